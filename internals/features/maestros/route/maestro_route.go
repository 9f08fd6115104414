package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	maestroController "cesi_backend/internals/features/maestros/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// MaestroRoutes monta /maestros. Los colores de escuela los consume el
// propio maestro; el resto es administración.
func MaestroRoutes(api fiber.Router, db *gorm.DB) {
	ctl := maestroController.NewMaestroController(db)

	grp := api.Group("/maestros", authMiddleware.AuthMiddleware(db))
	grp.Get("/:maestroId/colores", ctl.ColoresDeEscuela)

	soloAdmin := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("maestros"), constants.RoleAdmin)
	grp.Get("/", soloAdmin, ctl.Index)
	grp.Post("/", soloAdmin, ctl.Store)
	grp.Get("/:id", soloAdmin, ctl.Show)
	grp.Put("/:id", soloAdmin, ctl.Update)
	grp.Delete("/:id", soloAdmin, ctl.Destroy)
}
