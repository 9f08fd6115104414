package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdministradorModel es el perfil del administrador; se espeja con users por
// administrador_usuario.
type AdministradorModel struct {
	AdministradorID       uuid.UUID `gorm:"type:uuid;primaryKey;column:administrador_id" json:"administrador_id"`
	AdministradorNombre   string    `gorm:"size:255;not null;column:administrador_nombre" json:"administrador_nombre"`
	AdministradorUsuario  string    `gorm:"size:255;uniqueIndex;not null;column:administrador_usuario" json:"administrador_usuario"`
	AdministradorTelefono string    `gorm:"size:15;column:administrador_telefono" json:"administrador_telefono"`
	AdministradorFoto     string    `gorm:"size:255;column:administrador_foto" json:"administrador_foto"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (AdministradorModel) TableName() string { return "cesi_administradores" }

func (a *AdministradorModel) BeforeCreate(tx *gorm.DB) error {
	if a.AdministradorID == uuid.Nil {
		a.AdministradorID = uuid.New()
	}
	return nil
}
