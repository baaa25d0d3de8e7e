package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrUserInactive   = errors.New("usuario inactivo")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrInvalidFixture = errors.New("datos de fixture inconsistentes")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
)
