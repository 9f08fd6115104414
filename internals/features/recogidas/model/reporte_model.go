package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReporteModel registra un PDF de recogidas generado para un tutor.
type ReporteModel struct {
	ReporteID  uuid.UUID `gorm:"type:uuid;primaryKey;column:reporte_id" json:"reporte_id"`
	ReportePdf string    `gorm:"size:255;not null;column:reporte_pdf" json:"reporte_pdf"`

	CesiTutoreID uuid.UUID `gorm:"type:uuid;not null;index;column:cesi_tutore_id" json:"cesi_tutore_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (ReporteModel) TableName() string { return "cesi_reportes" }

func (r *ReporteModel) BeforeCreate(tx *gorm.DB) error {
	if r.ReporteID == uuid.Nil {
		r.ReporteID = uuid.New()
	}
	return nil
}
