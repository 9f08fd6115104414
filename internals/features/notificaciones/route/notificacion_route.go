package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificacionController "cesi_backend/internals/features/notificaciones/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// NotificacionRoutes monta /notificaciones (avisos de maestros hacia tutores).
func NotificacionRoutes(api fiber.Router, db *gorm.DB) {
	ctl := notificacionController.NewNotificacionController(db)

	grp := api.Group("/notificaciones", authMiddleware.AuthMiddleware(db))
	grp.Get("/alumno/:alumnoId", ctl.Index)
	grp.Post("/alumno/:maestroId/:alumnoId", ctl.Create)
	grp.Get("/tutor/:tutorId", ctl.PorTutor)
	grp.Put("/alumno/:alumnoId/notificacion/:id", ctl.Update)
	grp.Delete("/alumno/:alumnoId/notificacion/:id", ctl.Destroy)
}
