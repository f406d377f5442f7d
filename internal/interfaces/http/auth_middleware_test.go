package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/consola-admin/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/consola-admin/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(7)
	testUsername  = "admin"
	testIssuer    = "consola-admin-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un handler
// que devuelve los locals cargados por el middleware.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":  apphttp.GetUserID(c),
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

func bearer(t *testing.T, secret string, expMin int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testUserID, testUsername, testIssuer, expMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValidoCargaLocals(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, bearer(t, testJWTSecret, testExpMin))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.EqualValues(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
}

func TestAuthMiddleware_SinHeaderDevuelveEnvelope401(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.EqualValues(t, apphttp.CodeUnauthorized, body["code"])
	assert.Equal(t, "missing token", body["message"])
}

func TestAuthMiddleware_EsquemaIncorrecto(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.EqualValues(t, apphttp.CodeUnauthorized, decodeMap(t, resp)["code"])
}

func TestAuthMiddleware_FirmaConOtroSecreto(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, bearer(t, "otro-secreto", testExpMin))

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid or expired token", decodeMap(t, resp)["message"])
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, bearer(t, testJWTSecret, -5))

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_BearerSinToken(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "Bearer   ")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
