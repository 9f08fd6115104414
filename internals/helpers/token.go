package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Claims que el middleware de auth deja en c.Locals.

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Token sin user_id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id no válido en el token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}

func GetEmailFromToken(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}
