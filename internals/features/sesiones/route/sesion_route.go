package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sesionController "cesi_backend/internals/features/sesiones/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// SesionRoutes monta /sesiones.
func SesionRoutes(api fiber.Router, db *gorm.DB) {
	ctl := sesionController.NewSesionController(db)

	grp := api.Group("/sesiones", authMiddleware.AuthMiddleware(db))
	grp.Get("/", ctl.Index)
	grp.Post("/", ctl.Create)
	grp.Get("/:id", ctl.Show)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Destroy)
	grp.Get("/:id/responsable", ctl.Responsable)
}
