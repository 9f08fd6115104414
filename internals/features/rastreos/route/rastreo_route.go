package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rastreoController "cesi_backend/internals/features/rastreos/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// RastreoRoutes monta /rastreo/recogida/*.
func RastreoRoutes(api fiber.Router, db *gorm.DB) {
	ctl := rastreoController.NewRastreoController(db)

	grp := api.Group("/rastreo", authMiddleware.AuthMiddleware(db))
	grp.Get("/recogida/:recogidaId", ctl.Index)
	grp.Post("/recogida/:recogidaId", ctl.Create)
	grp.Get("/recogida/:recogidaId/:id", ctl.Show)
	grp.Put("/recogida/:recogidaId/:id", ctl.Update)
	grp.Delete("/recogida/:recogidaId/:id", ctl.Destroy)
}
