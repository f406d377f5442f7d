package adminapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/ports"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/infrastructure/httpclient"
)

var _ ports.AuthAPI = (*AuthAPI)(nil)

const userPrefix = "/user"

// AuthAPI login, registro y reseteo de contraseña. Usa el mismo cliente e interceptor
// que el resto de módulos; nunca registra credenciales en los logs.
type AuthAPI struct {
	c *httpclient.Client
}

// NewAuthAPI construye el módulo sobre el cliente compartido.
func NewAuthAPI(c *httpclient.Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// Login envía las credenciales como parámetros de consulta (contrato del backend) y
// devuelve el perfil con el token de sesión.
func (a *AuthAPI) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, fmt.Errorf("auth: usuario y contraseña son requeridos: %w", domain.ErrInvalidInput)
	}
	params := httpclient.NewQuery().
		Raw("username", in.Username).
		Raw("password", in.Password).
		Values()
	path := userPrefix + "/login"
	user, err := httpclient.Post[dto.LoginResponse](ctx, a.c, path, params, nil)
	if err != nil {
		return nil, err
	}
	if user.Token == "" {
		return nil, &domain.DecodeError{Path: path, Err: errors.New("login sin token")}
	}
	return &user, nil
}

// Register da de alta un usuario.
func (a *AuthAPI) Register(ctx context.Context, in dto.RegisterRequest) (bool, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return false, fmt.Errorf("auth: usuario y contraseña son requeridos: %w", domain.ErrInvalidInput)
	}
	return ack(ctx, a.c, http.MethodPost, userPrefix+"/register", in)
}

// ResetPassword cambia la contraseña de userID; el servidor verifica los últimos cuatro
// dígitos del teléfono registrado.
func (a *AuthAPI) ResetPassword(ctx context.Context, userID int64, in dto.ResetPasswordRequest) (bool, error) {
	if err := checkID("user", userID); err != nil {
		return false, err
	}
	if in.NewPassword == "" {
		return false, fmt.Errorf("auth: nueva contraseña vacía: %w", domain.ErrInvalidInput)
	}
	if !isFourDigits(in.LastFourDigits) {
		return false, fmt.Errorf("auth: se esperan 4 dígitos de verificación: %w", domain.ErrInvalidInput)
	}
	params := httpclient.NewQuery().
		Raw("newPassword", in.NewPassword).
		Raw("lastFourDigits", in.LastFourDigits).
		Values()
	return httpclient.Ack(ctx, a.c, httpclient.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("%s/resetPassword/%d", userPrefix, userID),
		Query:  params,
	})
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
