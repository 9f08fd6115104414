package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	responsableController "cesi_backend/internals/features/responsables/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// ResponsableRoutes monta /responsables. Los crea y administra el tutor
// desde el cliente; la activación también es del tutor.
func ResponsableRoutes(api fiber.Router, db *gorm.DB) {
	ctl := responsableController.NewResponsableController(db)

	grp := api.Group("/responsables", authMiddleware.AuthMiddleware(db))
	grp.Post("/", ctl.Store)
	grp.Get("/:responsableId/school-colors", ctl.SchoolColors)
	grp.Get("/:id", ctl.Show)
	grp.Put("/:id/activar", ctl.Activar)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Destroy)
}
