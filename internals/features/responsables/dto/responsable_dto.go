package dto

import "github.com/google/uuid"

type CreateResponsableRequest struct {
	ResponsableNombre   string    `json:"responsable_nombre" form:"responsable_nombre" validate:"required,max=255"`
	ResponsableUsuario  string    `json:"responsable_usuario" form:"responsable_usuario" validate:"required,email"`
	ResponsablePassword string    `json:"responsable_contrasena" form:"responsable_contrasena" validate:"required,min=8"`
	ResponsableTelefono string    `json:"responsable_telefono" form:"responsable_telefono" validate:"required,numeric,len=10"`
	CesiTutoreID        uuid.UUID `json:"cesi_tutore_id" form:"cesi_tutore_id" validate:"required"`
}

type UpdateResponsableRequest struct {
	ResponsableNombre   string `json:"responsable_nombre" form:"responsable_nombre" validate:"required,max=255"`
	ResponsableUsuario  string `json:"responsable_usuario" form:"responsable_usuario" validate:"required,email"`
	ResponsablePassword string `json:"responsable_contrasena" form:"responsable_contrasena" validate:"omitempty,min=8"`
	ResponsableTelefono string `json:"responsable_telefono" form:"responsable_telefono" validate:"required,numeric,len=10"`
}
