package domain

import "time"

// User es la unica entidad persistida: la cuenta con credenciales.
// Email se guarda normalizado (minusculas, sin espacios) y es la clave natural.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity es la asercion minima devuelta al autenticar; nunca incluye secretos.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Identity proyecta el usuario a su asercion de identidad.
func (u User) Identity() Identity {
	return Identity{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
