package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/internal/application/auth"
	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

// AuthHandler maneja login, registro y reseteo de contraseña.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login POST /user/login?username=&password=
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	in := dto.LoginRequest{Username: c.Query("username"), Password: c.Query("password")}
	if in.Username == "" || in.Password == "" {
		return fail(c, CodeBadRequest, "username and password are required")
	}
	user, err := h.uc.Login(in)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		h.log.Info().Str("username", in.Username).Msg("login rechazado")
		return fail(c, CodeUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, CodeUnauthorized, "account disabled")
	case err != nil:
		return fail(c, CodeServerError, err.Error())
	}
	return ok(c, user)
}

// Register POST /user/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, CodeBadRequest, "invalid body")
	}
	if _, err := h.uc.RegisterUser(in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fail(c, CodeBadRequest, "username and password are required")
		}
		return failDomain(c, "user", err)
	}
	return ok(c, true)
}

// ResetPassword PUT /user/resetPassword/:id?newPassword=&lastFourDigits=
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, CodeBadRequest, "invalid id")
	}
	err := h.uc.ResetPassword(id, dto.ResetPasswordRequest{
		NewPassword:    c.Query("newPassword"),
		LastFourDigits: c.Query("lastFourDigits"),
	})
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, CodeBadRequest, "newPassword and lastFourDigits are required")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, CodeBadRequest, "verification digits do not match")
	case err != nil:
		return failDomain(c, "user", err)
	}
	return ok(c, true)
}
