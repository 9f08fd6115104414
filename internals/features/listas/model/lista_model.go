package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListaModel agrupa el pase de lista que un maestro levanta para un salón en
// una fecha determinada.
type ListaModel struct {
	ListaID     uuid.UUID      `gorm:"type:uuid;primaryKey;column:lista_id" json:"lista_id"`
	ListaNombre string         `gorm:"size:100;not null;column:lista_nombre" json:"lista_nombre"`
	ListaFecha  datatypes.Date `gorm:"not null;column:lista_fecha" json:"lista_fecha"`

	CesiMaestroID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_maestro_id" json:"cesi_maestro_id"`
	CesiSaloneID  uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_salone_id" json:"cesi_salone_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (ListaModel) TableName() string { return "cesi_listas" }

func (l *ListaModel) BeforeCreate(tx *gorm.DB) error {
	if l.ListaID == uuid.Nil {
		l.ListaID = uuid.New()
	}
	return nil
}
