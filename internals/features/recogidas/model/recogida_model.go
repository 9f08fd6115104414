package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Estatus de recogida. Cualquier estatus puede asignarse desde cualquier
// otro: el flujo original no impone tabla de transiciones y ese
// comportamiento se conserva.
const (
	EstatusPendiente = "pendiente"
	EstatusCompleta  = "completa"
	EstatusCancelada = "cancelada"
)

func EsEstatusValido(s string) bool {
	return s == EstatusPendiente || s == EstatusCompleta || s == EstatusCancelada
}

type RecogidaModel struct {
	RecogidaID            uuid.UUID      `gorm:"type:uuid;primaryKey;column:recogida_id" json:"recogida_id"`
	RecogidaFecha         datatypes.Date `gorm:"not null;column:recogida_fecha" json:"recogida_fecha"`
	RecogidaEstatus       string         `gorm:"type:varchar(20);not null;default:'pendiente';column:recogida_estatus" json:"recogida_estatus"`
	RecogidaObservaciones string         `gorm:"type:text;column:recogida_observaciones" json:"recogida_observaciones"`

	CesiResponsableID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_responsable_id" json:"cesi_responsable_id"`
	CesiAlumnoID      uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_alumno_id" json:"cesi_alumno_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (RecogidaModel) TableName() string { return "cesi_recogidas" }

func (r *RecogidaModel) BeforeCreate(tx *gorm.DB) error {
	if r.RecogidaID == uuid.Nil {
		r.RecogidaID = uuid.New()
	}
	if r.RecogidaEstatus == "" {
		r.RecogidaEstatus = EstatusPendiente
	}
	return nil
}
