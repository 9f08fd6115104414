package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	dashboardController "cesi_backend/internals/features/dashboard/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctl := dashboardController.NewDashboardController(db)

	grp := api.Group("/dashboard",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("el panel"), constants.RoleAdmin),
	)
	grp.Get("/responsables-inactivos", ctl.ResponsablesInactivos)
}
