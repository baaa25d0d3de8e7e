package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-fixtures/internal/application/auth"
	"github.com/jhoicas/inventario-fixtures/internal/application/dto"
)

// AuthHandler emite tokens de demostración para los usuarios del fixture.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token godoc
// @Summary      Token de demostración
// @Description  Emite un JWT para un usuario activo del fixture (sin contraseña).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "username"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.IssueToken(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
