package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paseController "cesi_backend/internals/features/pases/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// PaseRoutes monta /pase/alumno/*.
func PaseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := paseController.NewPaseController(db)

	grp := api.Group("/pase", authMiddleware.AuthMiddleware(db))
	grp.Get("/alumno/:alumnoId", ctl.Index)
	grp.Post("/alumno/:alumnoId", ctl.Create)
	grp.Get("/alumno/:alumnoId/:id", ctl.Show)
	grp.Put("/alumno/:alumnoId/:id", ctl.Update)
	grp.Delete("/alumno/:alumnoId/:id", ctl.Destroy)
}
