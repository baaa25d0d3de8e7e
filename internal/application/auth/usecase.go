package auth

import (
	"github.com/jhoicas/inventario-fixtures/internal/application/dto"
	"github.com/jhoicas/inventario-fixtures/internal/domain"
	"github.com/jhoicas/inventario-fixtures/internal/domain/repository"
	"github.com/jhoicas/inventario-fixtures/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase emite tokens de demostración para los usuarios del fixture.
// Los usuarios del fixture no tienen contraseña: basta el username de un usuario activo.
type AuthUseCase struct {
	users  repository.FixtureLookup
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.FixtureLookup, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// IssueToken genera un JWT con el rol del usuario. ErrUserNotFound si el username no existe,
// ErrUserInactive si el usuario está inactivo.
func (uc *AuthUseCase) IssueToken(in dto.TokenRequest) (*dto.TokenResponse, error) {
	if in.Username == "" {
		return nil, domain.ErrInvalidInput
	}
	user, ok := uc.users.UserByUsername(in.Username)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      user,
	}, nil
}
