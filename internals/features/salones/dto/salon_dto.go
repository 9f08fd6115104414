package dto

import "github.com/google/uuid"

type CreateSalonRequest struct {
	SalonNombre   string    `json:"salon_nombre" form:"salon_nombre" validate:"required,max=255"`
	SalonGrado    string    `json:"salon_grado" form:"salon_grado" validate:"omitempty,max=50"`
	CesiEscuelaID uuid.UUID `json:"cesi_escuela_id" form:"cesi_escuela_id" validate:"required"`
}

type UpdateSalonRequest struct {
	SalonNombre   string    `json:"salon_nombre" form:"salon_nombre" validate:"required,max=255"`
	SalonGrado    string    `json:"salon_grado" form:"salon_grado" validate:"omitempty,max=50"`
	CesiEscuelaID uuid.UUID `json:"cesi_escuela_id" form:"cesi_escuela_id" validate:"required"`
}
