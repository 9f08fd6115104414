package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	escuelaController "cesi_backend/internals/features/escuelas/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// EscuelaRoutes monta /escuelas (sólo administradores).
func EscuelaRoutes(api fiber.Router, db *gorm.DB) {
	ctl := escuelaController.NewEscuelaController(db)

	grp := api.Group("/escuelas",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("escuelas"), constants.RoleAdmin),
	)
	grp.Get("/", ctl.Index)
	grp.Post("/crear", ctl.Create)
	grp.Get("/:id", ctl.Show)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Destroy)
	grp.Get("/:id/ui", ctl.ShowUi)
	grp.Put("/:id/ui", ctl.UpsertUi)
}
