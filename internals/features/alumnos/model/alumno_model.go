package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlumnoModel requiere tutor y salón existentes.
type AlumnoModel struct {
	AlumnoID     uuid.UUID `gorm:"type:uuid;primaryKey;column:alumno_id" json:"alumno_id"`
	AlumnoNombre string    `gorm:"size:255;not null;column:alumno_nombre" json:"alumno_nombre"`
	AlumnoFoto   string    `gorm:"size:255;column:alumno_foto" json:"alumno_foto"`

	CesiTutoreID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_tutore_id" json:"cesi_tutore_id"`
	CesiSaloneID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_salone_id" json:"cesi_salone_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (AlumnoModel) TableName() string { return "cesi_alumnos" }

func (a *AlumnoModel) BeforeCreate(tx *gorm.DB) error {
	if a.AlumnoID == uuid.Nil {
		a.AlumnoID = uuid.New()
	}
	return nil
}
