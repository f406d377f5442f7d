package dto

import (
	"time"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse perfil del usuario autenticado; el token viaja dentro del perfil.
type LoginResponse = entity.User

// RegisterRequest alta de un usuario nuevo.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// ResetPasswordRequest nueva contraseña más los últimos cuatro dígitos del teléfono como verificación.
type ResetPasswordRequest struct {
	NewPassword    string
	LastFourDigits string
}

// Session sesión abierta en el cliente. El token se guarda aparte y User.Token queda vacío.
// ExpiresAt es cero si el token no declara expiración.
type Session struct {
	User      LoginResponse `json:"user"`
	Token     string        `json:"-"`
	ExpiresAt time.Time     `json:"expires_at"`
}
