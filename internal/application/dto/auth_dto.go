package dto

import "github.com/jhoicas/inventario-fixtures/internal/domain/entity"

// TokenRequest body para POST /api/auth/token: solo el username de un usuario del fixture.
type TokenRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
}

// TokenResponse salida con el token de demostración y el usuario al que pertenece.
type TokenResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expires_in"` // segundos
	User      entity.User `json:"user"`
}
