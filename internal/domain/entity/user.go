package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// User representa un usuario del sistema de inventario (técnicos, supervisores, administradores).
type User struct {
	ID         string    `json:"id" validate:"required"`
	Username   string    `json:"username" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	Email      string    `json:"email" validate:"required,email"`
	Role       string    `json:"role" validate:"allowed=user.role"` // admin, manager, user
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"createdAt"`
	IsActive   bool      `json:"isActive"`
}
