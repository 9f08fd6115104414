package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asistenciaController "cesi_backend/internals/features/asistencias/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// AsistenciaRoutes monta /asistencias.
func AsistenciaRoutes(api fiber.Router, db *gorm.DB) {
	ctl := asistenciaController.NewAsistenciaController(db)

	grp := api.Group("/asistencias", authMiddleware.AuthMiddleware(db))
	grp.Post("/", ctl.Store)
	grp.Get("/:id", ctl.Show)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Destroy)
}
