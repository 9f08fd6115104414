package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	alumnoModel "cesi_backend/internals/features/alumnos/model"
	paseDTO "cesi_backend/internals/features/pases/dto"
	paseModel "cesi_backend/internals/features/pases/model"
	sesionModel "cesi_backend/internals/features/sesiones/model"
	helper "cesi_backend/internals/helpers"
)

var validate *validator.Validate = helper.NewValidator()

// PaseController registra las salidas de un alumno; el pase puede ir ligado
// a una sesión de responsable o quedar suelto.
type PaseController struct {
	DB *gorm.DB
}

func NewPaseController(db *gorm.DB) *PaseController {
	return &PaseController{DB: db}
}

/* =========================================================
   LISTAR
   GET /api/pase/alumno/:alumnoId
   ========================================================= */

func (ctl *PaseController) Index(c *fiber.Ctx) error {
	alumnoID, err := ctl.alumnoExistente(c.Params("alumnoId"))
	if err != nil {
		return err
	}

	pases := []paseModel.PaseModel{}
	if err := ctl.DB.Where("cesi_alumno_id = ?", alumnoID).
		Order("pase_fecha DESC").Find(&pases).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, pases)
}

/* =========================================================
   CREAR
   POST /api/pase/alumno/:alumnoId
   ========================================================= */

func (ctl *PaseController) Create(c *fiber.Ctx) error {
	alumnoID, err := ctl.alumnoExistente(c.Params("alumnoId"))
	if err != nil {
		return err
	}

	var req paseDTO.CreatePaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.CesiSesionID != nil {
		var count int64
		if err := ctl.DB.Model(&sesionModel.SesionModel{}).Where("sesion_id = ?", *req.CesiSesionID).Count(&count).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
		}
		if count == 0 {
			return helper.ValidationFields(c, map[string]string{"cesi_sesion_id": "La sesión seleccionada no existe."})
		}
	}

	fecha, _ := time.Parse("2006-01-02", req.PaseFecha)
	pase := paseModel.PaseModel{
		PaseFecha:    datatypes.Date(fecha),
		PasePresente: *req.PasePresente,
		CesiAlumnoID: alumnoID,
		CesiSesionID: req.CesiSesionID,
	}
	if err := ctl.DB.Create(&pase).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el pase")
	}
	return helper.Created(c, pase)
}

/* =========================================================
   MOSTRAR
   GET /api/pase/alumno/:alumnoId/:id
   ========================================================= */

func (ctl *PaseController) Show(c *fiber.Ctx) error {
	pase, err := ctl.cargar(c)
	if err != nil {
		return err
	}
	return helper.Success(c, pase)
}

/* =========================================================
   ACTUALIZAR
   PUT /api/pase/alumno/:alumnoId/:id
   ========================================================= */

func (ctl *PaseController) Update(c *fiber.Ctx) error {
	pase, err := ctl.cargar(c)
	if err != nil {
		return err
	}

	var req paseDTO.UpdatePaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fecha, _ := time.Parse("2006-01-02", req.PaseFecha)
	pase.PaseFecha = datatypes.Date(fecha)
	pase.PasePresente = *req.PasePresente
	pase.CesiSesionID = req.CesiSesionID
	if err := ctl.DB.Save(pase).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el pase")
	}
	return helper.Success(c, pase)
}

/* =========================================================
   ELIMINAR
   DELETE /api/pase/alumno/:alumnoId/:id
   ========================================================= */

func (ctl *PaseController) Destroy(c *fiber.Ctx) error {
	pase, err := ctl.cargar(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(pase).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el pase")
	}
	return helper.Success(c, fiber.Map{"success": "Pase eliminado exitosamente"})
}

func (ctl *PaseController) alumnoExistente(param string) (uuid.UUID, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}
	var count int64
	if err := ctl.DB.Model(&alumnoModel.AlumnoModel{}).Where("alumno_id = ?", id).Count(&count).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	if count == 0 {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado")
	}
	return id, nil
}

func (ctl *PaseController) cargar(c *fiber.Ctx) (*paseModel.PaseModel, error) {
	alumnoID, err := ctl.alumnoExistente(c.Params("alumnoId"))
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var pase paseModel.PaseModel
	if err := ctl.DB.Where("pase_id = ? AND cesi_alumno_id = ?", id, alumnoID).First(&pase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Pase no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &pase, nil
}
