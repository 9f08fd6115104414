package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cesi_backend/internals/configs"
	authModel "cesi_backend/internals/features/users/auth/model"
	userModel "cesi_backend/internals/features/users/user/model"
)

// AuthMiddleware valida el bearer token: no revocado (blacklist), firma y
// expiración correctas, y usuario aún activo. Deja user_id, role, email y
// user_name en c.Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		var revoked authModel.TokenBlacklist
		if err := db.Where("token = ?", tokenString).First(&revoked).Error; err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token revocado")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Error interno")
		}

		if configs.JWTSecret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET no configurado")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("método de firma inesperado")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token no válido")
		}

		if err := validateExpiry(claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expirado")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sin user_id válido")
		}

		var usr userModel.UserModel
		if err := db.First(&usr, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Usuario no encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error interno")
		}
		if !usr.UserActivo {
			return fiber.NewError(fiber.StatusForbidden, "La cuenta está desactivada")
		}

		c.Locals("user_id", userID.String())
		c.Locals("token", tokenString)
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		if email, ok := claims["email"].(string); ok {
			c.Locals("email", email)
		}
		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get("Authorization")
	if h == "" {
		return "", errors.New("Falta el encabezado Authorization")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("Formato de Authorization no válido")
	}
	return parts[1], nil
}

func validateExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("exp ausente")
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return errors.New("token expirado")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("user_id ausente")
	}
	return uuid.Parse(raw)
}
