package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recogidaController "cesi_backend/internals/features/recogidas/controller"
	authMiddleware "cesi_backend/internals/middlewares/auth"
)

// RecogidaRoutes monta /recogida: el flujo de recogidas y sus reportes.
func RecogidaRoutes(api fiber.Router, db *gorm.DB) {
	ctl := recogidaController.NewRecogidaController(db)

	grp := api.Group("/recogida", authMiddleware.AuthMiddleware(db))
	grp.Get("/alumnos/:tutorId", ctl.AlumnosSinRecogida)
	grp.Post("/generar", ctl.Generar)
	grp.Get("/tutor/:tutorId", ctl.PorTutor)
	grp.Get("/estatus", ctl.PorEstatus)
	grp.Put("/:id/estatus", ctl.ActualizarEstatus)
	grp.Get("/reporte/:tutorId", ctl.GenerarReporte)
	grp.Get("/reportes/:tutorId", ctl.ReportesPorTutor)
}
