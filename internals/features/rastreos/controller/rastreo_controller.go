package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	rastreoDTO "cesi_backend/internals/features/rastreos/dto"
	rastreoModel "cesi_backend/internals/features/rastreos/model"
	recogidaModel "cesi_backend/internals/features/recogidas/model"
	helper "cesi_backend/internals/helpers"
)

var validate *validator.Validate = helper.NewValidator()

// RastreoController registra muestras de ubicación de una recogida. El alta
// no revisa el estatus de la recogida: una recogida completada o cancelada
// sigue aceptando rastreos.
type RastreoController struct {
	DB *gorm.DB
}

func NewRastreoController(db *gorm.DB) *RastreoController {
	return &RastreoController{DB: db}
}

/* =========================================================
   LISTAR
   GET /api/rastreo/recogida/:recogidaId
   ========================================================= */

func (ctl *RastreoController) Index(c *fiber.Ctx) error {
	recogidaID, err := ctl.recogidaExistente(c.Params("recogidaId"))
	if err != nil {
		return err
	}

	rastreos := []rastreoModel.RastreoModel{}
	if err := ctl.DB.Where("cesi_recogida_id = ?", recogidaID).
		Order("rastreo_fecha").Find(&rastreos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, rastreos)
}

/* =========================================================
   CREAR
   POST /api/rastreo/recogida/:recogidaId
   ========================================================= */

func (ctl *RastreoController) Create(c *fiber.Ctx) error {
	recogidaID, err := ctl.recogidaExistente(c.Params("recogidaId"))
	if err != nil {
		return err
	}

	var req rastreoDTO.CreateRastreoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rastreo := rastreoModel.RastreoModel{
		RastreoLatitud:  *req.RastreoLatitud,
		RastreoLongitud: *req.RastreoLongitud,
		CesiRecogidaID:  recogidaID,
	}
	if err := ctl.DB.Create(&rastreo).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo registrar el rastreo")
	}
	return helper.Created(c, rastreo)
}

/* =========================================================
   MOSTRAR
   GET /api/rastreo/recogida/:recogidaId/:id
   ========================================================= */

func (ctl *RastreoController) Show(c *fiber.Ctx) error {
	rastreo, err := ctl.cargar(c)
	if err != nil {
		return err
	}
	return helper.Success(c, rastreo)
}

/* =========================================================
   ACTUALIZAR
   PUT /api/rastreo/recogida/:recogidaId/:id
   ========================================================= */

func (ctl *RastreoController) Update(c *fiber.Ctx) error {
	rastreo, err := ctl.cargar(c)
	if err != nil {
		return err
	}

	var req rastreoDTO.UpdateRastreoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rastreo.RastreoLatitud = *req.RastreoLatitud
	rastreo.RastreoLongitud = *req.RastreoLongitud
	if err := ctl.DB.Save(rastreo).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el rastreo")
	}
	return helper.Success(c, rastreo)
}

/* =========================================================
   ELIMINAR
   DELETE /api/rastreo/recogida/:recogidaId/:id
   ========================================================= */

func (ctl *RastreoController) Destroy(c *fiber.Ctx) error {
	rastreo, err := ctl.cargar(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(rastreo).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el rastreo")
	}
	return helper.Success(c, fiber.Map{"success": "Rastreo eliminado exitosamente"})
}

func (ctl *RastreoController) recogidaExistente(param string) (uuid.UUID, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}
	var count int64
	if err := ctl.DB.Model(&recogidaModel.RecogidaModel{}).Where("recogida_id = ?", id).Count(&count).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	if count == 0 {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Recogida no encontrada")
	}
	return id, nil
}

func (ctl *RastreoController) cargar(c *fiber.Ctx) (*rastreoModel.RastreoModel, error) {
	recogidaID, err := ctl.recogidaExistente(c.Params("recogidaId"))
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var rastreo rastreoModel.RastreoModel
	if err := ctl.DB.Where("rastreo_id = ? AND cesi_recogida_id = ?", id, recogidaID).First(&rastreo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Rastreo no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &rastreo, nil
}
