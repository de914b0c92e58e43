package http

import "github.com/gofiber/fiber/v2"

// Home responde el saludo en texto plano de la raíz.
func Home(c *fiber.Ctx) error {
	return c.SendString("Bienvenido al backend")
}

// Health devuelve un handler de liveness con el nombre del servicio.
func Health(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}
