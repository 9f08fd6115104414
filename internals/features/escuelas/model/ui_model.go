package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UiModel guarda los colores y logo de la escuela para el tema del cliente.
type UiModel struct {
	UiID     uuid.UUID `gorm:"type:uuid;primaryKey;column:ui_id" json:"ui_id"`
	UiColor1 string    `gorm:"size:7;column:ui_color1" json:"ui_color1"`
	UiColor2 string    `gorm:"size:7;column:ui_color2" json:"ui_color2"`
	UiColor3 string    `gorm:"size:7;column:ui_color3" json:"ui_color3"`
	UiLogo   string    `gorm:"size:255;column:ui_logo" json:"ui_logo"`

	CesiEscuelaID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_escuela_id" json:"cesi_escuela_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (UiModel) TableName() string { return "cesi_uis" }

func (u *UiModel) BeforeCreate(tx *gorm.DB) error {
	if u.UiID == uuid.Nil {
		u.UiID = uuid.New()
	}
	return nil
}
