package dto

import "github.com/google/uuid"

type CreateListaRequest struct {
	ListaNombre  string    `json:"lista_nombre" form:"lista_nombre" validate:"required,max=100"`
	ListaFecha   string    `json:"lista_fecha" form:"lista_fecha" validate:"required,datetime=2006-01-02"`
	CesiSaloneID uuid.UUID `json:"cesi_salone_id" form:"cesi_salone_id" validate:"required"`
}

type UpdateListaRequest struct {
	ListaNombre  string    `json:"lista_nombre" form:"lista_nombre" validate:"required,max=100"`
	ListaFecha   string    `json:"lista_fecha" form:"lista_fecha" validate:"required,datetime=2006-01-02"`
	CesiSaloneID uuid.UUID `json:"cesi_salone_id" form:"cesi_salone_id" validate:"required"`
}
