package dto

import "github.com/google/uuid"

/* =========================================================
   ESCUELA
   ========================================================= */

type CreateEscuelaRequest struct {
	EscuelaNombre string `json:"escuela_nombre" form:"escuela_nombre" validate:"required,max=255"`
	EscuelaFoto   string `json:"escuela_foto" form:"escuela_foto" validate:"omitempty,max=255"`
}

type UpdateEscuelaRequest struct {
	EscuelaNombre string `json:"escuela_nombre" form:"escuela_nombre" validate:"required,max=255"`
	EscuelaFoto   string `json:"escuela_foto" form:"escuela_foto" validate:"omitempty,max=255"`
}

/* =========================================================
   UI (colores y logo de la escuela)
   ========================================================= */

type UpsertUiRequest struct {
	UiColor1 string `json:"ui_color1" form:"ui_color1" validate:"required,hexcolor"`
	UiColor2 string `json:"ui_color2" form:"ui_color2" validate:"required,hexcolor"`
	UiColor3 string `json:"ui_color3" form:"ui_color3" validate:"required,hexcolor"`
	UiLogo   string `json:"ui_logo" form:"ui_logo" validate:"omitempty,max=255"`
}

// ColoresResponse es la proyección de branding que consumen los clientes.
type ColoresResponse struct {
	UiColor1 string `json:"ui_color1"`
	UiColor2 string `json:"ui_color2"`
	UiColor3 string `json:"ui_color3"`
	UiLogo   string `json:"ui_logo"`
}

type EscuelaIDHolder struct {
	CesiEscuelaID uuid.UUID `json:"cesi_escuela_id"`
}
