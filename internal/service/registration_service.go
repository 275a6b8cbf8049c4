package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ArvinoDel/TomoLearn/internal/domain"
	"github.com/ArvinoDel/TomoLearn/internal/repository"
)

// Errores de negocio del flujo de cuentas.
var (
	ErrMissingFields      = errors.New("missing fields")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegistrationService valida, normaliza y da de alta cuentas nuevas.
type RegistrationService struct {
	logger *zap.Logger
	users  repository.UserRepository
	hasher *PasswordHasher
}

func NewRegistrationService(logger *zap.Logger, users repository.UserRepository, hasher *PasswordHasher) *RegistrationService {
	if hasher == nil {
		hasher = NewPasswordHasher(defaultBcryptCost)
	}
	return &RegistrationService{
		logger: logger,
		users:  users,
		hasher: hasher,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// RegisteredUser es la respuesta del alta: identificador y email normalizado.
// Nunca transporta la contraseña ni su hash.
type RegisteredUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Register da de alta una cuenta. La pre-consulta por email solo produce un
// conflicto temprano; la autoridad contra registros concurrentes es el índice
// único del store, cuya violación también se traduce a ErrEmailInUse.
func (s *RegistrationService) Register(ctx context.Context, input RegisterInput) (RegisteredUser, error) {
	if s.users == nil {
		return RegisteredUser{}, errors.New("registration service not configured")
	}

	emailAddr := normalizeEmail(input.Email)
	password := input.Password
	if emailAddr == "" || strings.TrimSpace(password) == "" {
		return RegisteredUser{}, ErrMissingFields
	}
	name := strings.TrimSpace(input.Name)

	_, err := s.users.GetByEmail(ctx, emailAddr)
	if err == nil {
		return RegisteredUser{}, ErrEmailInUse
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return RegisteredUser{}, err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, ErrEmptyPassword) {
			return RegisteredUser{}, ErrMissingFields
		}
		return RegisteredUser{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        emailAddr,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return RegisteredUser{}, ErrEmailInUse
		}
		if s.logger != nil {
			s.logger.Error("create user failed", zap.Error(err), zap.String("email", emailAddr))
		}
		return RegisteredUser{}, err
	}

	return RegisteredUser{ID: user.ID, Email: user.Email}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
