package dto

import "github.com/google/uuid"

type CreateSesionRequest struct {
	SesionFecha       string    `json:"sesion_fecha" form:"sesion_fecha" validate:"required,datetime=2006-01-02"`
	SesionInicio      string    `json:"sesion_inicio" form:"sesion_inicio" validate:"required,datetime=15:04"`
	SesionFin         string    `json:"sesion_fin" form:"sesion_fin" validate:"omitempty,datetime=15:04"`
	CesiResponsableID uuid.UUID `json:"cesi_responsable_id" form:"cesi_responsable_id" validate:"required"`
}

type UpdateSesionRequest struct {
	SesionFecha  string `json:"sesion_fecha" form:"sesion_fecha" validate:"required,datetime=2006-01-02"`
	SesionInicio string `json:"sesion_inicio" form:"sesion_inicio" validate:"required,datetime=15:04"`
	SesionFin    string `json:"sesion_fin" form:"sesion_fin" validate:"omitempty,datetime=15:04"`
}
