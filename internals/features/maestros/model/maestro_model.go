package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaestroModel se espeja con users por maestro_usuario.
type MaestroModel struct {
	MaestroID       uuid.UUID `gorm:"type:uuid;primaryKey;column:maestro_id" json:"maestro_id"`
	MaestroNombre   string    `gorm:"size:255;not null;column:maestro_nombre" json:"maestro_nombre"`
	MaestroUsuario  string    `gorm:"size:255;uniqueIndex;not null;column:maestro_usuario" json:"maestro_usuario"`
	MaestroTelefono string    `gorm:"size:15;not null;column:maestro_telefono" json:"maestro_telefono"`
	MaestroFoto     string    `gorm:"size:255;column:maestro_foto" json:"maestro_foto"`

	CesiEscuelaID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_escuela_id" json:"cesi_escuela_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (MaestroModel) TableName() string { return "cesi_maestros" }

func (m *MaestroModel) BeforeCreate(tx *gorm.DB) error {
	if m.MaestroID == uuid.Nil {
		m.MaestroID = uuid.New()
	}
	return nil
}
