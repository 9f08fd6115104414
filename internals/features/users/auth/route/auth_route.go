package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "cesi_backend/internals/features/users/auth/controller"
	"cesi_backend/internals/middlewares"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// AuthRoutes monta /auth/* y /registro.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	grp := api.Group("/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	grp.Post("/logout", authMiddleware.AuthMiddleware(db), ctl.Logout)

	api.Post("/registro", ctl.Register)
}
