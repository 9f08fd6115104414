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
	asistenciaDTO "cesi_backend/internals/features/asistencias/dto"
	asistenciaModel "cesi_backend/internals/features/asistencias/model"
	helper "cesi_backend/internals/helpers"
)

var validate *validator.Validate = helper.NewValidator()

// AsistenciaController es el pase de lista diario que levanta el maestro.
type AsistenciaController struct {
	DB *gorm.DB
}

func NewAsistenciaController(db *gorm.DB) *AsistenciaController {
	return &AsistenciaController{DB: db}
}

/* =========================================================
   CREAR
   POST /api/asistencias
   ========================================================= */

func (ctl *AsistenciaController) Store(c *fiber.Ctx) error {
	var req asistenciaDTO.CreateAsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&alumnoModel.AlumnoModel{}).Where("alumno_id = ?", req.CesiAlumnoID).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if count == 0 {
		return helper.ValidationFields(c, map[string]string{"cesi_alumno_id": "El alumno seleccionado no existe."})
	}

	fecha, _ := time.Parse("2006-01-02", req.AsistenciaFecha)
	asistencia := asistenciaModel.AsistenciaModel{
		AsistenciaFecha:    datatypes.Date(fecha),
		AsistenciaPresente: *req.AsistenciaPresente,
		CesiAlumnoID:       req.CesiAlumnoID,
	}
	if err := ctl.DB.Create(&asistencia).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la asistencia")
	}
	return helper.Created(c, asistencia)
}

/* =========================================================
   MOSTRAR
   GET /api/asistencias/:id
   ========================================================= */

func (ctl *AsistenciaController) Show(c *fiber.Ctx) error {
	asistencia, err := ctl.cargar(c.Params("id"))
	if err != nil {
		return err
	}
	return helper.Success(c, asistencia)
}

/* =========================================================
   ACTUALIZAR
   PUT /api/asistencias/:id
   ========================================================= */

func (ctl *AsistenciaController) Update(c *fiber.Ctx) error {
	asistencia, err := ctl.cargar(c.Params("id"))
	if err != nil {
		return err
	}

	var req asistenciaDTO.UpdateAsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fecha, _ := time.Parse("2006-01-02", req.AsistenciaFecha)
	asistencia.AsistenciaFecha = datatypes.Date(fecha)
	asistencia.AsistenciaPresente = *req.AsistenciaPresente
	if err := ctl.DB.Save(asistencia).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la asistencia")
	}
	return helper.Success(c, asistencia)
}

/* =========================================================
   ELIMINAR
   DELETE /api/asistencias/:id
   ========================================================= */

func (ctl *AsistenciaController) Destroy(c *fiber.Ctx) error {
	asistencia, err := ctl.cargar(c.Params("id"))
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(asistencia).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la asistencia")
	}
	return helper.Success(c, fiber.Map{"success": "Asistencia eliminada exitosamente"})
}

func (ctl *AsistenciaController) cargar(param string) (*asistenciaModel.AsistenciaModel, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var asistencia asistenciaModel.AsistenciaModel
	if err := ctl.DB.First(&asistencia, "asistencia_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Asistencia no encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &asistencia, nil
}
