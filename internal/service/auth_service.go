package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ArvinoDel/TomoLearn/internal/domain"
	"github.com/ArvinoDel/TomoLearn/internal/repository"
)

// AuthService verifica credenciales contra el store de usuarios.
type AuthService struct {
	logger *zap.Logger
	users  repository.UserRepository
	hasher *PasswordHasher
}

func NewAuthService(logger *zap.Logger, users repository.UserRepository, hasher *PasswordHasher) *AuthService {
	if hasher == nil {
		hasher = NewPasswordHasher(defaultBcryptCost)
	}
	return &AuthService{
		logger: logger,
		users:  users,
		hasher: hasher,
	}
}

// Authenticate devuelve la identidad del usuario o ErrInvalidCredentials.
// Email desconocido y contraseña incorrecta producen el mismo error: el
// resultado no revela qué emails existen.
func (s *AuthService) Authenticate(ctx context.Context, emailAddr, password string) (domain.Identity, error) {
	if s.users == nil {
		return domain.Identity{}, errors.New("auth service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" || password == "" {
		return domain.Identity{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Identity{}, ErrInvalidCredentials
		}
		if s.logger != nil {
			s.logger.Error("user lookup failed", zap.Error(err))
		}
		return domain.Identity{}, err
	}
	if user.PasswordHash == "" {
		return domain.Identity{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.Identity{}, ErrInvalidCredentials
	}
	return user.Identity(), nil
}
