package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alumnoRoute "cesi_backend/internals/features/alumnos/route"
	asistenciaRoute "cesi_backend/internals/features/asistencias/route"
	dashboardRoute "cesi_backend/internals/features/dashboard/route"
	escuelaRoute "cesi_backend/internals/features/escuelas/route"
	listaRoute "cesi_backend/internals/features/listas/route"
	maestroRoute "cesi_backend/internals/features/maestros/route"
	notificacionRoute "cesi_backend/internals/features/notificaciones/route"
	paseRoute "cesi_backend/internals/features/pases/route"
	rastreoRoute "cesi_backend/internals/features/rastreos/route"
	recogidaRoute "cesi_backend/internals/features/recogidas/route"
	responsableRoute "cesi_backend/internals/features/responsables/route"
	salonRoute "cesi_backend/internals/features/salones/route"
	sesionRoute "cesi_backend/internals/features/sesiones/route"
	tutorRoute "cesi_backend/internals/features/tutores/route"
	authRoute "cesi_backend/internals/features/users/auth/route"
)

// SetupRoutes monta todas las rutas de la API bajo /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== AUTENTICACIÓN =====================
	log.Println("[INFO] Montando rutas de autenticación...")
	authRoute.AuthRoutes(api, db)

	// ===================== ADMINISTRACIÓN =====================
	log.Println("[INFO] Montando rutas de administración...")
	escuelaRoute.EscuelaRoutes(api, db)
	salonRoute.SalonRoutes(api, db)
	maestroRoute.MaestroRoutes(api, db)
	tutorRoute.TutorRoutes(api, db)
	alumnoRoute.AlumnoRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)

	// ===================== OPERACIÓN DIARIA =====================
	log.Println("[INFO] Montando rutas de operación diaria...")
	responsableRoute.ResponsableRoutes(api, db)
	recogidaRoute.RecogidaRoutes(api, db)
	rastreoRoute.RastreoRoutes(api, db)
	sesionRoute.SesionRoutes(api, db)
	paseRoute.PaseRoutes(api, db)
	asistenciaRoute.AsistenciaRoutes(api, db)
	listaRoute.ListaRoutes(api, db)
	notificacionRoute.NotificacionRoutes(api, db)
}
