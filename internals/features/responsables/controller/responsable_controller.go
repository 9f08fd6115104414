package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	escuelaModel "cesi_backend/internals/features/escuelas/model"
	responsableDTO "cesi_backend/internals/features/responsables/dto"
	responsableModel "cesi_backend/internals/features/responsables/model"
	tutorModel "cesi_backend/internals/features/tutores/model"
	userModel "cesi_backend/internals/features/users/user/model"
	helper "cesi_backend/internals/helpers"
	"cesi_backend/internals/helpers/storage"
)

var validate *validator.Validate = helper.NewValidator()

// ResponsableController gestiona a los responsables de recogida. El alta
// escribe perfil y credencial en una transacción; el responsable nace
// desactivado hasta que el tutor lo activa.
type ResponsableController struct {
	DB *gorm.DB
}

func NewResponsableController(db *gorm.DB) *ResponsableController {
	return &ResponsableController{DB: db}
}

/* =========================================================
   CREAR
   POST /api/responsables
   ========================================================= */

func (ctl *ResponsableController) Store(c *fiber.Ctx) error {
	var req responsableDTO.CreateResponsableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.ResponsableNombre = strings.TrimSpace(req.ResponsableNombre)
	req.ResponsableUsuario = strings.TrimSpace(strings.ToLower(req.ResponsableUsuario))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tutores int64
	if err := ctl.DB.Model(&tutorModel.TutorModel{}).Where("tutor_id = ?", req.CesiTutoreID).Count(&tutores).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if tutores == 0 {
		return helper.ValidationFields(c, map[string]string{"cesi_tutore_id": "El tutor seleccionado no existe."})
	}

	var count int64
	if err := ctl.DB.Model(&userModel.UserModel{}).Where("user_email = ?", req.ResponsableUsuario).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if count > 0 {
		return helper.ValidationFields(c, map[string]string{"responsable_usuario": "El correo electrónico ya está registrado."})
	}

	foto := ""
	if fh, err := c.FormFile("responsable_foto"); err == nil && fh != nil {
		foto, err = storage.GuardarFoto("responsables", fh)
		if err != nil {
			return helper.ValidationFields(c, map[string]string{"responsable_foto": err.Error()})
		}
	}

	responsable := responsableModel.ResponsableModel{
		ResponsableNombre:     req.ResponsableNombre,
		ResponsableUsuario:    req.ResponsableUsuario,
		ResponsableTelefono:   req.ResponsableTelefono,
		ResponsableFoto:       foto,
		ResponsableActivacion: false,
		CesiTutoreID:          req.CesiTutoreID,
	}
	usr := userModel.UserModel{
		UserName:   req.ResponsableNombre,
		UserEmail:  req.ResponsableUsuario,
		UserRole:   constants.RoleResponsable,
		UserActivo: true,
	}
	if err := usr.SetPassword(req.ResponsablePassword); err != nil {
		_ = storage.Eliminar(foto)
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&responsable).Error; err != nil {
			return err
		}
		return tx.Create(&usr).Error
	}); err != nil {
		_ = storage.Eliminar(foto)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el responsable")
	}

	return helper.Created(c, responsable)
}

/* =========================================================
   MOSTRAR
   GET /api/responsables/:id
   ========================================================= */

func (ctl *ResponsableController) Show(c *fiber.Ctx) error {
	responsable, err := ctl.cargar(c.Params("id"))
	if err != nil {
		return err
	}
	return helper.Success(c, responsable)
}

/* =========================================================
   ACTUALIZAR
   PUT /api/responsables/:id
   ========================================================= */

func (ctl *ResponsableController) Update(c *fiber.Ctx) error {
	responsable, err := ctl.cargar(c.Params("id"))
	if err != nil {
		return err
	}

	var req responsableDTO.UpdateResponsableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.ResponsableNombre = strings.TrimSpace(req.ResponsableNombre)
	req.ResponsableUsuario = strings.TrimSpace(strings.ToLower(req.ResponsableUsuario))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.ResponsableUsuario != responsable.ResponsableUsuario {
		var count int64
		if err := ctl.DB.Model(&userModel.UserModel{}).Where("user_email = ?", req.ResponsableUsuario).Count(&count).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
		}
		if count > 0 {
			return helper.ValidationFields(c, map[string]string{"responsable_usuario": "El correo electrónico ya está registrado."})
		}
	}

	fotoAnterior := responsable.ResponsableFoto
	fotoNueva := ""
	if fh, err := c.FormFile("responsable_foto"); err == nil && fh != nil {
		fotoNueva, err = storage.GuardarFoto("responsables", fh)
		if err != nil {
			return helper.ValidationFields(c, map[string]string{"responsable_foto": err.Error()})
		}
	}

	correoAnterior := responsable.ResponsableUsuario
	responsable.ResponsableNombre = req.ResponsableNombre
	responsable.ResponsableUsuario = req.ResponsableUsuario
	responsable.ResponsableTelefono = req.ResponsableTelefono
	if fotoNueva != "" {
		responsable.ResponsableFoto = fotoNueva
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(responsable).Error; err != nil {
			return err
		}

		var usr userModel.UserModel
		if err := tx.Where("user_email = ?", correoAnterior).First(&usr).Error; err != nil {
			return err
		}
		usr.UserName = req.ResponsableNombre
		usr.UserEmail = req.ResponsableUsuario
		if req.ResponsablePassword != "" {
			if err := usr.SetPassword(req.ResponsablePassword); err != nil {
				return err
			}
		}
		return tx.Save(&usr).Error
	}); err != nil {
		_ = storage.Eliminar(fotoNueva)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el responsable")
	}

	if fotoNueva != "" {
		_ = storage.Eliminar(fotoAnterior)
	}
	return helper.Success(c, responsable)
}

/* =========================================================
   ELIMINAR
   DELETE /api/responsables/:id
   ========================================================= */

func (ctl *ResponsableController) Destroy(c *fiber.Ctx) error {
	responsable, err := ctl.cargar(c.Params("id"))
	if err != nil {
		return err
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_email = ?", responsable.ResponsableUsuario).Delete(&userModel.UserModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(responsable).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el responsable")
	}

	_ = storage.Eliminar(responsable.ResponsableFoto)
	return helper.Success(c, fiber.Map{"success": "Responsable eliminado exitosamente"})
}

/* =========================================================
   ACTIVAR
   PUT /api/responsables/:id/activar
   ========================================================= */

// Activar prende la bandera de activación; con ella el responsable se vuelve
// elegible para recogidas y sale del listado de inactivos.
func (ctl *ResponsableController) Activar(c *fiber.Ctx) error {
	responsable, err := ctl.cargar(c.Params("id"))
	if err != nil {
		return err
	}

	responsable.ResponsableActivacion = true
	if err := ctl.DB.Save(responsable).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo activar el responsable")
	}
	return helper.Success(c, responsable)
}

/* =========================================================
   COLORES DE LA ESCUELA
   GET /api/responsables/:responsableId/school-colors
   ========================================================= */

func (ctl *ResponsableController) SchoolColors(c *fiber.Ctx) error {
	responsable, err := ctl.cargar(c.Params("responsableId"))
	if err != nil {
		return err
	}

	var tutor tutorModel.TutorModel
	if err := ctl.DB.First(&tutor, "tutor_id = ?", responsable.CesiTutoreID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Tutor no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var ui escuelaModel.UiModel
	if err := ctl.DB.Where("cesi_escuela_id = ?", tutor.CesiEscuelaID).First(&ui).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Colores de la escuela no encontrados")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, ui)
}

func (ctl *ResponsableController) cargar(param string) (*responsableModel.ResponsableModel, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var responsable responsableModel.ResponsableModel
	if err := ctl.DB.First(&responsable, "responsable_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Responsable no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &responsable, nil
}
