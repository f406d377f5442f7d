package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/pkg/jwt"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

// Locals keys para UserID y Username en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Username a c.Locals.
// Los rechazos usan el mismo envelope que el resto de respuestas.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(envelope{Code: CodeUnauthorized, Message: "missing token"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(envelope{Code: CodeUnauthorized, Message: "expected: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(envelope{Code: CodeUnauthorized, Message: "missing token"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(envelope{Code: CodeUnauthorized, Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetUsername devuelve el Username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// AuditMiddleware registra quién ejecutó cada operación de escritura (POST, PUT, DELETE).
// Va después de AuthMiddleware; sin token el usuario queda en cero.
func AuditMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
			return c.Next()
		}
		err := c.Next()
		log.Info().
			Int64("user_id", GetUserID(c)).
			Str("username", GetUsername(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Msg("operación de escritura")
		return err
	}
}
