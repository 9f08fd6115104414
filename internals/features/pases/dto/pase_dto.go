package dto

import "github.com/google/uuid"

type CreatePaseRequest struct {
	PaseFecha    string     `json:"pase_fecha" form:"pase_fecha" validate:"required,datetime=2006-01-02"`
	PasePresente *bool      `json:"pase_presente" form:"pase_presente" validate:"required"`
	CesiSesionID *uuid.UUID `json:"cesi_sesion_id" form:"cesi_sesion_id"`
}

type UpdatePaseRequest struct {
	PaseFecha    string     `json:"pase_fecha" form:"pase_fecha" validate:"required,datetime=2006-01-02"`
	PasePresente *bool      `json:"pase_presente" form:"pase_presente" validate:"required"`
	CesiSesionID *uuid.UUID `json:"cesi_sesion_id" form:"cesi_sesion_id"`
}
