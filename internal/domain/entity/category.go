package entity

import "time"

// Category representa una categoría de productos de inventario.
type Category struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Code        string    `json:"code" validate:"required"` // código único
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" validate:"gtefield=CreatedAt"`
}
