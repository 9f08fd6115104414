package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EscuelaModel struct {
	EscuelaID     uuid.UUID `gorm:"type:uuid;primaryKey;column:escuela_id" json:"escuela_id"`
	EscuelaNombre string    `gorm:"size:255;not null;column:escuela_nombre" json:"escuela_nombre"`
	EscuelaFoto   string    `gorm:"size:255;column:escuela_foto" json:"escuela_foto"`

	CesiAdministradorID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_administrador_id" json:"cesi_administrador_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (EscuelaModel) TableName() string { return "cesi_escuelas" }

func (e *EscuelaModel) BeforeCreate(tx *gorm.DB) error {
	if e.EscuelaID == uuid.Nil {
		e.EscuelaID = uuid.New()
	}
	return nil
}
