package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	alumnoController "cesi_backend/internals/features/alumnos/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// AlumnoRoutes monta /alumnos (sólo administradores).
func AlumnoRoutes(api fiber.Router, db *gorm.DB) {
	ctl := alumnoController.NewAlumnoController(db)

	grp := api.Group("/alumnos",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("alumnos"), constants.RoleAdmin),
	)
	grp.Get("/", ctl.Index)
	grp.Post("/", ctl.Store)
	grp.Get("/:id", ctl.Show)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Destroy)
}
