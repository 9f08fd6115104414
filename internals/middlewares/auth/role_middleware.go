package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RoleMiddleware valida que el rol del token pertenezca a allowedRoles.
func RoleMiddleware(allowedRoles []string, forbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token sin información de rol",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if forbiddenMessage == "" {
			forbiddenMessage = "No tiene permisos para acceder a este recurso"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": forbiddenMessage,
		})
	}
}

// OnlyRoles es el atajo usado al registrar rutas.
func OnlyRoles(message string, roles ...string) fiber.Handler {
	return RoleMiddleware(roles, message)
}
