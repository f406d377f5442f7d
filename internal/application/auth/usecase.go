// Package auth contiene la autenticación del backend mock: alta de usuarios, login con
// emisión de JWT y reseteo de contraseña verificado por teléfono.
package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
	"github.com/jhoicas/consola-admin/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y reseteo de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste. Devuelve ErrDuplicate si el username ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("usuario y contraseña son obligatorios: %w", domain.ErrInvalidInput)
	}
	existing, _ := uc.userRepo.GetByUsername(username)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Email:        in.Email,
		Avatar:       in.Avatar,
		Status:       entity.UserStatusActive,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica username/password, genera JWT y retorna el perfil con el token.
// Usuario inexistente y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	out := *user
	out.Token = token
	return &out, nil
}

// ResetPassword cambia la contraseña si lastFourDigits coincide con el final del teléfono registrado.
func (uc *AuthUseCase) ResetPassword(userID int64, in dto.ResetPasswordRequest) error {
	if in.NewPassword == "" || len(in.LastFourDigits) != 4 {
		return fmt.Errorf("nueva contraseña y cuatro dígitos son obligatorios: %w", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if len(user.Phone) < 4 || !strings.HasSuffix(user.Phone, in.LastFourDigits) {
		return domain.ErrForbidden
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePasswordHash(userID, string(hash))
}
