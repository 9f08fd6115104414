package dto

import "github.com/google/uuid"

type CreateTutorRequest struct {
	TutorNombre   string    `json:"tutor_nombre" form:"tutor_nombre" validate:"required,max=255"`
	TutorUsuario  string    `json:"tutor_usuario" form:"tutor_usuario" validate:"required,email"`
	TutorPassword string    `json:"tutor_contrasena" form:"tutor_contrasena" validate:"required,min=8"`
	TutorTelefono string    `json:"tutor_telefono" form:"tutor_telefono" validate:"required,numeric,len=10"`
	CesiEscuelaID uuid.UUID `json:"cesi_escuela_id" form:"cesi_escuela_id" validate:"required"`
}

type UpdateTutorRequest struct {
	TutorNombre   string    `json:"tutor_nombre" form:"tutor_nombre" validate:"required,max=255"`
	TutorUsuario  string    `json:"tutor_usuario" form:"tutor_usuario" validate:"required,email"`
	TutorPassword string    `json:"tutor_contrasena" form:"tutor_contrasena" validate:"omitempty,min=8"`
	TutorTelefono string    `json:"tutor_telefono" form:"tutor_telefono" validate:"required,numeric,len=10"`
	CesiEscuelaID uuid.UUID `json:"cesi_escuela_id" form:"cesi_escuela_id" validate:"required"`
}
