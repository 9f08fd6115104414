package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	listaController "cesi_backend/internals/features/listas/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// ListaRoutes monta /listas (sólo maestros).
func ListaRoutes(api fiber.Router, db *gorm.DB) {
	ctl := listaController.NewListaController(db)

	grp := api.Group("/listas",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorMaestro("listas"), constants.RoleMaestro),
	)
	grp.Get("/", ctl.Index)
	grp.Post("/crear", ctl.Create)
	grp.Get("/:id", ctl.Show)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Destroy)
}
