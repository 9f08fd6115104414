package dto

type CreateNotificacionRequest struct {
	NotificacionMensaje string `json:"notificacion_mensaje" form:"notificacion_mensaje" validate:"required,max=1000"`
}

type UpdateNotificacionRequest struct {
	NotificacionMensaje string `json:"notificacion_mensaje" form:"notificacion_mensaje" validate:"omitempty,max=1000"`
	NotificacionLeida   *bool  `json:"notificacion_leida" form:"notificacion_leida"`
}
