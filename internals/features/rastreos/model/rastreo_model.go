package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RastreoModel es una muestra de ubicación ligada a una recogida. Bitácora de
// sólo inserción: se admite registrar rastreos aun con la recogida completada
// o cancelada.
type RastreoModel struct {
	RastreoID       uuid.UUID `gorm:"type:uuid;primaryKey;column:rastreo_id" json:"rastreo_id"`
	RastreoLatitud  float64   `gorm:"not null;column:rastreo_latitud" json:"rastreo_latitud"`
	RastreoLongitud float64   `gorm:"not null;column:rastreo_longitud" json:"rastreo_longitud"`
	RastreoFecha    time.Time `gorm:"autoCreateTime;column:rastreo_fecha" json:"rastreo_fecha"`

	CesiRecogidaID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_recogida_id" json:"cesi_recogida_id"`
}

func (RastreoModel) TableName() string { return "cesi_rastreos" }

func (r *RastreoModel) BeforeCreate(tx *gorm.DB) error {
	if r.RastreoID == uuid.Nil {
		r.RastreoID = uuid.New()
	}
	return nil
}
