package dto

import "github.com/google/uuid"

type CreateAlumnoRequest struct {
	AlumnoNombre string    `json:"alumno_nombre" form:"alumno_nombre" validate:"required,max=255"`
	CesiTutoreID uuid.UUID `json:"cesi_tutore_id" form:"cesi_tutore_id" validate:"required"`
	CesiSaloneID uuid.UUID `json:"cesi_salone_id" form:"cesi_salone_id" validate:"required"`
}

type UpdateAlumnoRequest struct {
	AlumnoNombre string    `json:"alumno_nombre" form:"alumno_nombre" validate:"required,max=255"`
	CesiTutoreID uuid.UUID `json:"cesi_tutore_id" form:"cesi_tutore_id" validate:"required"`
	CesiSaloneID uuid.UUID `json:"cesi_salone_id" form:"cesi_salone_id" validate:"required"`
}
