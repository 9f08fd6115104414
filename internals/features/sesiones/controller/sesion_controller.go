package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	responsableModel "cesi_backend/internals/features/responsables/model"
	sesionDTO "cesi_backend/internals/features/sesiones/dto"
	sesionModel "cesi_backend/internals/features/sesiones/model"
	helper "cesi_backend/internals/helpers"
)

var validate *validator.Validate = helper.NewValidator()

type SesionController struct {
	DB *gorm.DB
}

func NewSesionController(db *gorm.DB) *SesionController {
	return &SesionController{DB: db}
}

/* =========================================================
   LISTAR
   GET /api/sesiones
   ========================================================= */

func (ctl *SesionController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	sesiones := []sesionModel.SesionModel{}
	if err := ctl.DB.Order("sesion_fecha DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&sesiones).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, sesiones)
}

/* =========================================================
   CREAR
   POST /api/sesiones
   ========================================================= */

func (ctl *SesionController) Create(c *fiber.Ctx) error {
	var req sesionDTO.CreateSesionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&responsableModel.ResponsableModel{}).
		Where("responsable_id = ?", req.CesiResponsableID).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if count == 0 {
		return helper.ValidationFields(c, map[string]string{"cesi_responsable_id": "El responsable seleccionado no existe."})
	}

	fecha, _ := time.Parse("2006-01-02", req.SesionFecha)
	sesion := sesionModel.SesionModel{
		SesionFecha:       datatypes.Date(fecha),
		SesionInicio:      req.SesionInicio,
		SesionFin:         req.SesionFin,
		CesiResponsableID: req.CesiResponsableID,
	}
	if err := ctl.DB.Create(&sesion).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la sesión")
	}
	return helper.Created(c, sesion)
}

/* =========================================================
   MOSTRAR
   GET /api/sesiones/:id
   ========================================================= */

func (ctl *SesionController) Show(c *fiber.Ctx) error {
	sesion, err := ctl.cargar(c.Params("id"))
	if err != nil {
		return err
	}
	return helper.Success(c, sesion)
}

/* =========================================================
   ACTUALIZAR
   PUT /api/sesiones/:id
   ========================================================= */

func (ctl *SesionController) Update(c *fiber.Ctx) error {
	sesion, err := ctl.cargar(c.Params("id"))
	if err != nil {
		return err
	}

	var req sesionDTO.UpdateSesionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fecha, _ := time.Parse("2006-01-02", req.SesionFecha)
	sesion.SesionFecha = datatypes.Date(fecha)
	sesion.SesionInicio = req.SesionInicio
	sesion.SesionFin = req.SesionFin
	if err := ctl.DB.Save(sesion).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la sesión")
	}
	return helper.Success(c, sesion)
}

/* =========================================================
   ELIMINAR
   DELETE /api/sesiones/:id
   ========================================================= */

func (ctl *SesionController) Destroy(c *fiber.Ctx) error {
	sesion, err := ctl.cargar(c.Params("id"))
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(sesion).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la sesión")
	}
	return helper.Success(c, fiber.Map{"success": "Sesión eliminada exitosamente"})
}

/* =========================================================
   RESPONSABLE DE LA SESIÓN
   GET /api/sesiones/:id/responsable
   ========================================================= */

func (ctl *SesionController) Responsable(c *fiber.Ctx) error {
	sesion, err := ctl.cargar(c.Params("id"))
	if err != nil {
		return err
	}

	var responsable responsableModel.ResponsableModel
	if err := ctl.DB.First(&responsable, "responsable_id = ?", sesion.CesiResponsableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Responsable no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, responsable)
}

func (ctl *SesionController) cargar(param string) (*sesionModel.SesionModel, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var sesion sesionModel.SesionModel
	if err := ctl.DB.First(&sesion, "sesion_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sesión no encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &sesion, nil
}
