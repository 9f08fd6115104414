package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	salonController "cesi_backend/internals/features/salones/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// SalonRoutes monta /salones (sólo administradores).
func SalonRoutes(api fiber.Router, db *gorm.DB) {
	ctl := salonController.NewSalonController(db)

	grp := api.Group("/salones",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("salones"), constants.RoleAdmin),
	)
	grp.Get("/", ctl.Index)
	grp.Post("/", ctl.Store)
	grp.Get("/:id", ctl.Show)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Destroy)
}
