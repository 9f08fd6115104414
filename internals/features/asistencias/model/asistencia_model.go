package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AsistenciaModel es el pase de lista diario de un alumno.
type AsistenciaModel struct {
	AsistenciaID       uuid.UUID      `gorm:"type:uuid;primaryKey;column:asistencia_id" json:"asistencia_id"`
	AsistenciaFecha    datatypes.Date `gorm:"not null;column:asistencia_fecha" json:"asistencia_fecha"`
	AsistenciaPresente bool           `gorm:"not null;default:false;column:asistencia_presente" json:"asistencia_presente"`

	CesiAlumnoID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_alumno_id" json:"cesi_alumno_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (AsistenciaModel) TableName() string { return "cesi_asistencias" }

func (a *AsistenciaModel) BeforeCreate(tx *gorm.DB) error {
	if a.AsistenciaID == uuid.Nil {
		a.AsistenciaID = uuid.New()
	}
	return nil
}
