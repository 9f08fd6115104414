package dto

import userModel "cesi_backend/internals/features/users/user/model"

/* =========================================================
   LOGIN
   ========================================================= */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type LoginResponse struct {
	Token string              `json:"token"`
	User  userModel.UserModel `json:"user"`
}

/* =========================================================
   REGISTRO
   ========================================================= */

type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Telefono string `json:"telefono" validate:"omitempty,numeric,max=15"`
	Role     string `json:"role" validate:"required,oneof=admin tutor maestro responsable"`
}
