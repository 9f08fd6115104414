package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificacionModel es un aviso dirigido al tutor sobre uno de sus alumnos.
type NotificacionModel struct {
	NotificacionID      uuid.UUID `gorm:"type:uuid;primaryKey;column:notificacion_id" json:"notificacion_id"`
	NotificacionMensaje string    `gorm:"type:text;not null;column:notificacion_mensaje" json:"notificacion_mensaje"`
	NotificacionLeida   bool      `gorm:"not null;default:false;column:notificacion_leida" json:"notificacion_leida"`

	CesiTutoreID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_tutore_id" json:"cesi_tutore_id"`
	CesiAlumnoID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_alumno_id" json:"cesi_alumno_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (NotificacionModel) TableName() string { return "cesi_notificaciones" }

func (n *NotificacionModel) BeforeCreate(tx *gorm.DB) error {
	if n.NotificacionID == uuid.Nil {
		n.NotificacionID = uuid.New()
	}
	return nil
}
