package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/usecase"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/pkg/jwt"
)

func signedToken(t *testing.T, expMinutes int) string {
	t.Helper()
	tok, err := jwt.Generate("server-secret", 1, "admin", "test", expMinutes)
	require.NoError(t, err)
	return tok
}

func TestSession_LoginInstalaElToken(t *testing.T) {
	tok := signedToken(t, 30)
	auth := &fakeAuth{resp: &dto.LoginResponse{ID: 1, Username: "admin", Token: tok}}
	holder := &fakeHolder{}
	uc := usecase.NewSessionUseCase(auth, holder, nil, nil)

	sess, err := uc.Login(context.Background(), dto.LoginRequest{Username: " admin ", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "admin", auth.got.Username, "el usuario se envía sin espacios")
	assert.Equal(t, tok, holder.token)
	assert.Equal(t, tok, sess.Token)
	assert.Empty(t, sess.User.Token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), sess.ExpiresAt, time.Minute)

	cur, err := uc.Current()
	require.NoError(t, err)
	assert.Equal(t, int64(1), cur.User.ID)
}

func TestSession_TokenOpacoSinExpiracion(t *testing.T) {
	auth := &fakeAuth{resp: &dto.LoginResponse{ID: 1, Username: "admin", Token: "opaque-token"}}
	holder := &fakeHolder{}
	uc := usecase.NewSessionUseCase(auth, holder, nil, nil)

	sess, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "x"})

	require.NoError(t, err)
	assert.True(t, sess.ExpiresAt.IsZero())
	assert.Equal(t, "opaque-token", holder.token)
}

func TestSession_RechazaTokenExpirado(t *testing.T) {
	auth := &fakeAuth{resp: &dto.LoginResponse{ID: 1, Username: "admin", Token: signedToken(t, -1)}}
	holder := &fakeHolder{}
	uc := usecase.NewSessionUseCase(auth, holder, nil, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "x"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.Empty(t, holder.token)
	_, err = uc.Current()
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSession_PropagaElErrorDeNegocio(t *testing.T) {
	biz := &domain.BusinessError{Code: 401, Message: "invalid credentials"}
	uc := usecase.NewSessionUseCase(&fakeAuth{err: biz}, &fakeHolder{}, nil, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "bad"})

	assert.Same(t, biz, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestSession_CredencialesVaciasNoLlamanAlBackend(t *testing.T) {
	auth := &fakeAuth{resp: &dto.LoginResponse{}}
	uc := usecase.NewSessionUseCase(auth, &fakeHolder{}, nil, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "  ", Password: "x"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, auth.got.Username)
}

func TestSession_LogoutYSesionVencida(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	auth := &fakeAuth{resp: &dto.LoginResponse{ID: 1, Username: "admin", Token: signedToken(t, 10)}}
	holder := &fakeHolder{}
	uc := usecase.NewSessionUseCase(auth, holder, nil, clock)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "x"})
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = uc.Current()
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Empty(t, holder.token)
	assert.Equal(t, 1, holder.cleared)

	uc.Logout()
	assert.Equal(t, 1, holder.cleared, "logout sin sesión no toca el cliente")
}
