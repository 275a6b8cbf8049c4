package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Errores del hasher de credenciales.
var (
	ErrEmptyPassword   = errors.New("empty password")
	ErrPasswordTooLong = errors.New("password too long")
)

// defaultBcryptCost es el factor de trabajo documentado del sistema.
const defaultBcryptCost = 12

// PasswordHasher envuelve bcrypt con un costo fijo. El salt queda embebido
// en el token, por lo que dos hashes del mismo texto nunca coinciden.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher crea un hasher con el costo dado; valores fuera de rango
// caen al costo por defecto.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash genera el token bcrypt para el texto plano.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if strings.TrimSpace(plaintext) == "" {
		return "", ErrEmptyPassword
	}
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(hashBytes), nil
}

// Verify reporta si el texto plano reproduce el token. La comparación interna
// de bcrypt es de tiempo constante.
func (h *PasswordHasher) Verify(plaintext, hashToken string) bool {
	if plaintext == "" || hashToken == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashToken), []byte(plaintext)) == nil
}
