package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResponsableModel es la persona autorizada por un tutor para recoger
// alumnos. responsable_activacion condiciona la elegibilidad de recogida.
type ResponsableModel struct {
	ResponsableID         uuid.UUID `gorm:"type:uuid;primaryKey;column:responsable_id" json:"responsable_id"`
	ResponsableNombre     string    `gorm:"size:255;not null;column:responsable_nombre" json:"responsable_nombre"`
	ResponsableUsuario    string    `gorm:"size:255;uniqueIndex;not null;column:responsable_usuario" json:"responsable_usuario"`
	ResponsableTelefono   string    `gorm:"size:15;not null;column:responsable_telefono" json:"responsable_telefono"`
	ResponsableFoto       string    `gorm:"size:255;column:responsable_foto" json:"responsable_foto"`
	ResponsableActivacion bool      `gorm:"not null;default:false;column:responsable_activacion" json:"responsable_activacion"`

	CesiTutoreID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_tutore_id" json:"cesi_tutore_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (ResponsableModel) TableName() string { return "cesi_responsables" }

func (r *ResponsableModel) BeforeCreate(tx *gorm.DB) error {
	if r.ResponsableID == uuid.Nil {
		r.ResponsableID = uuid.New()
	}
	return nil
}
