package dto

type CreateRastreoRequest struct {
	RastreoLatitud  *float64 `json:"rastreo_latitud" form:"rastreo_latitud" validate:"required,min=-90,max=90"`
	RastreoLongitud *float64 `json:"rastreo_longitud" form:"rastreo_longitud" validate:"required,min=-180,max=180"`
}

type UpdateRastreoRequest struct {
	RastreoLatitud  *float64 `json:"rastreo_latitud" form:"rastreo_latitud" validate:"required,min=-90,max=90"`
	RastreoLongitud *float64 `json:"rastreo_longitud" form:"rastreo_longitud" validate:"required,min=-180,max=180"`
}
