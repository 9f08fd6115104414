package dto

import "github.com/google/uuid"

type GenerarRecogidaRequest struct {
	CesiAlumnoID          uuid.UUID `json:"cesi_alumno_id" form:"cesi_alumno_id" validate:"required"`
	CesiResponsableID     uuid.UUID `json:"cesi_responsable_id" form:"cesi_responsable_id" validate:"required"`
	RecogidaObservaciones string    `json:"recogida_observaciones" form:"recogida_observaciones" validate:"omitempty,max=1000"`
}

type UpdateEstatusRequest struct {
	RecogidaEstatus string `json:"recogida_estatus" form:"recogida_estatus" validate:"required,oneof=pendiente completa cancelada"`
}
