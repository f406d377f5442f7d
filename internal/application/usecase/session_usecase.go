package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/ports"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/pkg/jwt"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

// SessionUseCase abre y cierra la sesión del operador sobre el cliente compartido.
// Seguro para uso concurrente.
type SessionUseCase struct {
	auth   ports.AuthAPI
	holder ports.SessionHolder
	log    *logger.Logger
	now    func() time.Time

	mu      sync.RWMutex
	current *dto.Session
}

// NewSessionUseCase construye el caso de uso. now nil usa time.Now.
func NewSessionUseCase(auth ports.AuthAPI, holder ports.SessionHolder, log *logger.Logger, now func() time.Time) *SessionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if now == nil {
		now = time.Now
	}
	return &SessionUseCase{auth: auth, holder: holder, log: log, now: now}
}

// Login autentica, verifica que el token no esté vencido y lo instala como
// Authorization por defecto del cliente.
func (uc *SessionUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.Session, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: usuario y contraseña son obligatorios", domain.ErrInvalidInput)
	}
	user, err := uc.auth.Login(ctx, in)
	if err != nil {
		return nil, err
	}

	var expiresAt time.Time
	if claims, err := jwt.Inspect(user.Token); err != nil {
		// El backend puede emitir tokens opacos; en ese caso no hay expiración conocida.
		uc.log.Debug().Err(err).Msg("token sin claims legibles")
	} else {
		expiresAt = claims.Expiry()
	}
	if !expiresAt.IsZero() && !expiresAt.After(uc.now()) {
		return nil, fmt.Errorf("%w: el token recibido ya expiró (%s)", domain.ErrUnauthorized, expiresAt.Format(time.RFC3339))
	}

	sess := &dto.Session{User: *user, Token: user.Token, ExpiresAt: expiresAt}
	sess.User.Token = ""

	uc.mu.Lock()
	uc.current = sess
	uc.holder.SetBearerToken(sess.Token)
	uc.mu.Unlock()

	uc.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Time("expires_at", expiresAt).Msg("sesión iniciada")
	out := *sess
	return &out, nil
}

// Current devuelve la sesión activa. Una sesión vencida se cierra y cuenta como ausente.
func (uc *SessionUseCase) Current() (*dto.Session, error) {
	uc.mu.RLock()
	sess := uc.current
	uc.mu.RUnlock()
	if sess == nil {
		return nil, domain.ErrNoSession
	}
	if !sess.ExpiresAt.IsZero() && !sess.ExpiresAt.After(uc.now()) {
		uc.Logout()
		return nil, domain.ErrNoSession
	}
	out := *sess
	return &out, nil
}

// Logout descarta la sesión y quita el header Authorization del cliente.
func (uc *SessionUseCase) Logout() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return
	}
	uc.current = nil
	uc.holder.ClearBearerToken()
	uc.log.Info().Msg("sesión cerrada")
}
