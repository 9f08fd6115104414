package dto

import "github.com/google/uuid"

type CreateAsistenciaRequest struct {
	AsistenciaFecha    string    `json:"asistencia_fecha" form:"asistencia_fecha" validate:"required,datetime=2006-01-02"`
	AsistenciaPresente *bool     `json:"asistencia_presente" form:"asistencia_presente" validate:"required"`
	CesiAlumnoID       uuid.UUID `json:"cesi_alumno_id" form:"cesi_alumno_id" validate:"required"`
}

type UpdateAsistenciaRequest struct {
	AsistenciaFecha    string `json:"asistencia_fecha" form:"asistencia_fecha" validate:"required,datetime=2006-01-02"`
	AsistenciaPresente *bool  `json:"asistencia_presente" form:"asistencia_presente" validate:"required"`
}
