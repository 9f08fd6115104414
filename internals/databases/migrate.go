package database

import (
	"log"

	"gorm.io/gorm"

	alumnoModel "cesi_backend/internals/features/alumnos/model"
	asistenciaModel "cesi_backend/internals/features/asistencias/model"
	escuelaModel "cesi_backend/internals/features/escuelas/model"
	listaModel "cesi_backend/internals/features/listas/model"
	maestroModel "cesi_backend/internals/features/maestros/model"
	notificacionModel "cesi_backend/internals/features/notificaciones/model"
	paseModel "cesi_backend/internals/features/pases/model"
	rastreoModel "cesi_backend/internals/features/rastreos/model"
	recogidaModel "cesi_backend/internals/features/recogidas/model"
	responsableModel "cesi_backend/internals/features/responsables/model"
	salonModel "cesi_backend/internals/features/salones/model"
	sesionModel "cesi_backend/internals/features/sesiones/model"
	tutorModel "cesi_backend/internals/features/tutores/model"
	authModel "cesi_backend/internals/features/users/auth/model"
	userModel "cesi_backend/internals/features/users/user/model"
)

// Models devuelve todos los modelos registrados, en orden de dependencia.
func Models() []interface{} {
	return []interface{}{
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&escuelaModel.AdministradorModel{},
		&escuelaModel.EscuelaModel{},
		&escuelaModel.UiModel{},
		&salonModel.SalonModel{},
		&maestroModel.MaestroModel{},
		&tutorModel.TutorModel{},
		&alumnoModel.AlumnoModel{},
		&responsableModel.ResponsableModel{},
		&recogidaModel.RecogidaModel{},
		&recogidaModel.ReporteModel{},
		&rastreoModel.RastreoModel{},
		&sesionModel.SesionModel{},
		&paseModel.PaseModel{},
		&asistenciaModel.AsistenciaModel{},
		&listaModel.ListaModel{},
		&notificacionModel.NotificacionModel{},
	}
}

func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(Models()...); err != nil {
		log.Fatalf("[ERROR] migración fallida: %v", err)
	}
	log.Println("[INFO] Migración completada.")
}
