package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	tutorController "cesi_backend/internals/features/tutores/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// TutorRoutes monta /tutores: lectura para el cliente móvil (los :id son IDs
// de usuario) y CRUD de administración.
func TutorRoutes(api fiber.Router, db *gorm.DB) {
	apiCtl := tutorController.NewTutorApiController(db)
	adminCtl := tutorController.NewTutorAdminController(db)

	grp := api.Group("/tutores", authMiddleware.AuthMiddleware(db))

	// cliente móvil
	grp.Get("/:id/alumnos", apiCtl.ShowAlumnosByTutor)
	grp.Get("/:tutorId/alumnos/:id", apiCtl.ShowAlumno)
	grp.Get("/:id/escuela/colores", apiCtl.ShowEscuelaColores)
	grp.Get("/:id/responsables", apiCtl.ShowResponsablesByTutor)
	grp.Get("/:tutorId/responsables/:id", apiCtl.ShowResponsable)
	grp.Post("/:id/foto", apiCtl.UpdateFoto)

	// administración
	soloAdmin := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("tutores"), constants.RoleAdmin)
	grp.Get("/", soloAdmin, adminCtl.Index)
	grp.Post("/", soloAdmin, adminCtl.Store)
	grp.Put("/:id", soloAdmin, adminCtl.Update)
	grp.Delete("/:id", soloAdmin, adminCtl.Destroy)

	grp.Get("/:id", apiCtl.ShowTutor)
}
