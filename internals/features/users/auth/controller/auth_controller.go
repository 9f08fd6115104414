package controller

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cesi_backend/internals/configs"
	"cesi_backend/internals/constants"
	escuelaModel "cesi_backend/internals/features/escuelas/model"
	authDTO "cesi_backend/internals/features/users/auth/dto"
	"cesi_backend/internals/features/users/auth/service"
	userModel "cesi_backend/internals/features/users/user/model"
	helper "cesi_backend/internals/helpers"
)

var validate *validator.Validate = helper.NewValidator()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* =========================================================
   LOGIN
   POST /api/auth/login
   ========================================================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var usr userModel.UserModel
	if err := ctl.DB.Where("user_email = ?", req.Email).First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Credenciales incorrectas")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if err := usr.CheckPassword(req.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Credenciales incorrectas")
	}
	if !usr.UserActivo {
		return helper.Error(c, fiber.StatusForbidden, "La cuenta está desactivada")
	}

	token, err := service.IssueToken(usr)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar el token")
	}
	return helper.Success(c, authDTO.LoginResponse{Token: token, User: usr})
}

/* =========================================================
   LOGIN GOOGLE
   POST /api/auth/login-google
   ========================================================= */

// LoginGoogle acepta un ID token de Google y emite un access token propio.
// Las cuentas se dan de alta por el administrador; un correo de Google sin
// usuario registrado no crea cuenta.
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authDTO.LoginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "ID token de Google no válido")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo decodificar el ID token")
	}

	var usr userModel.UserModel
	if err := ctl.DB.Where("user_email = ?", strings.ToLower(claimSet.Email)).First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "El correo no está registrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if !usr.UserActivo {
		return helper.Error(c, fiber.StatusForbidden, "La cuenta está desactivada")
	}

	token, err := service.IssueToken(usr)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar el token")
	}
	return helper.Success(c, authDTO.LoginResponse{Token: token, User: usr})
}

/* =========================================================
   LOGOUT
   POST /api/auth/logout
   ========================================================= */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token").(string)
	if tokenString == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Token ausente")
	}
	if err := service.RevokeToken(ctl.DB, tokenString); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo cerrar la sesión")
	}
	return helper.Success(c, fiber.Map{"success": "Sesión cerrada exitosamente"})
}

/* =========================================================
   REGISTRO
   POST /api/registro
   ========================================================= */

// Register crea la credencial y, para rol admin, el perfil de administrador
// en la misma transacción.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Nombre = strings.TrimSpace(req.Nombre)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidRole(req.Role) {
		return helper.ValidationFields(c, map[string]string{"role": "El rol seleccionado no es válido."})
	}

	var count int64
	if err := ctl.DB.Model(&userModel.UserModel{}).Where("user_email = ?", req.Email).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if count > 0 {
		return helper.ValidationFields(c, map[string]string{"email": "El correo electrónico ya está registrado."})
	}

	usr := userModel.UserModel{
		UserName:   req.Nombre,
		UserEmail:  req.Email,
		UserRole:   req.Role,
		UserActivo: true,
	}
	if err := usr.SetPassword(req.Password); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&usr).Error; err != nil {
			return err
		}
		if req.Role == constants.RoleAdmin {
			admin := escuelaModel.AdministradorModel{
				AdministradorNombre:   req.Nombre,
				AdministradorUsuario:  req.Email,
				AdministradorTelefono: req.Telefono,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo registrar el usuario")
	}

	return helper.Created(c, usr)
}
