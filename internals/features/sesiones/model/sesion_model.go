package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SesionModel registra una jornada de trabajo de un responsable: fecha del
// turno más hora de inicio y fin en formato HH:MM.
type SesionModel struct {
	SesionID     uuid.UUID      `gorm:"type:uuid;primaryKey;column:sesion_id" json:"sesion_id"`
	SesionFecha  datatypes.Date `gorm:"not null;column:sesion_fecha" json:"sesion_fecha"`
	SesionInicio string         `gorm:"size:8;not null;column:sesion_inicio" json:"sesion_inicio"`
	SesionFin    string         `gorm:"size:8;column:sesion_fin" json:"sesion_fin"`

	CesiResponsableID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_responsable_id" json:"cesi_responsable_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (SesionModel) TableName() string { return "cesi_sesiones" }

func (s *SesionModel) BeforeCreate(tx *gorm.DB) error {
	if s.SesionID == uuid.Nil {
		s.SesionID = uuid.New()
	}
	return nil
}
