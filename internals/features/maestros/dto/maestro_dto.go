package dto

import "github.com/google/uuid"

type CreateMaestroRequest struct {
	MaestroNombre   string    `json:"maestro_nombre" form:"maestro_nombre" validate:"required,max=255"`
	MaestroUsuario  string    `json:"maestro_usuario" form:"maestro_usuario" validate:"required,email"`
	MaestroPassword string    `json:"maestro_contrasena" form:"maestro_contrasena" validate:"required,min=8"`
	MaestroTelefono string    `json:"maestro_telefono" form:"maestro_telefono" validate:"required,numeric,max=15"`
	CesiEscuelaID   uuid.UUID `json:"cesi_escuela_id" form:"cesi_escuela_id" validate:"required"`
}

type UpdateMaestroRequest struct {
	MaestroNombre   string    `json:"maestro_nombre" form:"maestro_nombre" validate:"required,max=255"`
	MaestroUsuario  string    `json:"maestro_usuario" form:"maestro_usuario" validate:"required,email"`
	MaestroPassword string    `json:"maestro_contrasena" form:"maestro_contrasena" validate:"omitempty,min=8"`
	MaestroTelefono string    `json:"maestro_telefono" form:"maestro_telefono" validate:"required,numeric,max=15"`
	CesiEscuelaID   uuid.UUID `json:"cesi_escuela_id" form:"cesi_escuela_id" validate:"required"`
}
