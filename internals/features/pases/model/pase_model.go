package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaseModel es el registro de salida de un alumno en una jornada; cuando el
// pase ocurre dentro de una sesión de responsable se liga a ella, de lo
// contrario la sesión queda nula.
type PaseModel struct {
	PaseID       uuid.UUID      `gorm:"type:uuid;primaryKey;column:pase_id" json:"pase_id"`
	PaseFecha    datatypes.Date `gorm:"not null;column:pase_fecha" json:"pase_fecha"`
	PasePresente bool           `gorm:"not null;default:false;column:pase_presente" json:"pase_presente"`

	CesiAlumnoID uuid.UUID  `gorm:"type:uuid;not null;index;column:cesi_alumno_id" json:"cesi_alumno_id"`
	CesiSesionID *uuid.UUID `gorm:"type:uuid;index;column:cesi_sesion_id" json:"cesi_sesion_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (PaseModel) TableName() string { return "cesi_pases" }

func (p *PaseModel) BeforeCreate(tx *gorm.DB) error {
	if p.PaseID == uuid.Nil {
		p.PaseID = uuid.New()
	}
	return nil
}
