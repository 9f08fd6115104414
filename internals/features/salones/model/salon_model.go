package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalonModel struct {
	SalonID     uuid.UUID `gorm:"type:uuid;primaryKey;column:salon_id" json:"salon_id"`
	SalonNombre string    `gorm:"size:255;not null;column:salon_nombre" json:"salon_nombre"`
	SalonGrado  string    `gorm:"size:50;column:salon_grado" json:"salon_grado"`

	CesiEscuelaID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_escuela_id" json:"cesi_escuela_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (SalonModel) TableName() string { return "cesi_salones" }

func (s *SalonModel) BeforeCreate(tx *gorm.DB) error {
	if s.SalonID == uuid.Nil {
		s.SalonID = uuid.New()
	}
	return nil
}
