package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TutorModel se espeja con users por tutor_usuario. Al crear un tutor se crea
// también su responsable propio (el tutor puede recoger a sus alumnos).
type TutorModel struct {
	TutorID       uuid.UUID `gorm:"type:uuid;primaryKey;column:tutor_id" json:"tutor_id"`
	TutorNombre   string    `gorm:"size:255;not null;column:tutor_nombre" json:"tutor_nombre"`
	TutorUsuario  string    `gorm:"size:255;uniqueIndex;not null;column:tutor_usuario" json:"tutor_usuario"`
	TutorTelefono string    `gorm:"size:15;not null;column:tutor_telefono" json:"tutor_telefono"`
	TutorFoto     string    `gorm:"size:255;column:tutor_foto" json:"tutor_foto"`

	CesiEscuelaID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_escuela_id" json:"cesi_escuela_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (TutorModel) TableName() string { return "cesi_tutores" }

func (t *TutorModel) BeforeCreate(tx *gorm.DB) error {
	if t.TutorID == uuid.Nil {
		t.TutorID = uuid.New()
	}
	return nil
}
