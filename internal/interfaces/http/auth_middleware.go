package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/pkg/jwt"
)

// LocalEmail clave de c.Locals con el email de la cuenta autenticada.
const LocalEmail = "account_email"

// AuthMiddleware valida el Bearer Token JWT y guarda el email de la cuenta en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "token vacío")
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "token inválido o expirado")
		}
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetEmail devuelve el email autenticado (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: dto.CodeUnauthorized, Message: message})
}
