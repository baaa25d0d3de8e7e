package entity

import "time"

// Area representa un área organizacional (sede, piso o dependencia) donde se ubican los equipos.
type Area struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Code        string    `json:"code" validate:"required"` // código único
	Responsible string    `json:"responsible"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" validate:"gtefield=CreatedAt"`
}
