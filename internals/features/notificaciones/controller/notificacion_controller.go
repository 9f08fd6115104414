package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alumnoModel "cesi_backend/internals/features/alumnos/model"
	maestroModel "cesi_backend/internals/features/maestros/model"
	notificacionDTO "cesi_backend/internals/features/notificaciones/dto"
	notificacionModel "cesi_backend/internals/features/notificaciones/model"
	helper "cesi_backend/internals/helpers"
)

var validate *validator.Validate = helper.NewValidator()

// NotificacionController inserta avisos dirigidos al tutor del alumno. Sólo
// inserción de fila: no hay push ni cola de entrega.
type NotificacionController struct {
	DB *gorm.DB
}

func NewNotificacionController(db *gorm.DB) *NotificacionController {
	return &NotificacionController{DB: db}
}

/* =========================================================
   POR ALUMNO
   GET /api/notificaciones/alumno/:alumnoId
   ========================================================= */

func (ctl *NotificacionController) Index(c *fiber.Ctx) error {
	alumnoID, err := uuid.Parse(c.Params("alumnoId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	notificaciones := []notificacionModel.NotificacionModel{}
	if err := ctl.DB.Where("cesi_alumno_id = ?", alumnoID).
		Order("created_at").Find(&notificaciones).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, notificaciones)
}

/* =========================================================
   CREAR
   POST /api/notificaciones/alumno/:maestroId/:alumnoId
   ========================================================= */

// Create resuelve el tutor del alumno y le dirige el aviso.
func (ctl *NotificacionController) Create(c *fiber.Ctx) error {
	maestroID, err := uuid.Parse(c.Params("maestroId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}
	alumnoID, err := uuid.Parse(c.Params("alumnoId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	var count int64
	if err := ctl.DB.Model(&maestroModel.MaestroModel{}).Where("maestro_id = ?", maestroID).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if count == 0 {
		return helper.NotFound(c, "Maestro no encontrado")
	}

	var alumno alumnoModel.AlumnoModel
	if err := ctl.DB.First(&alumno, "alumno_id = ?", alumnoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Alumno no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var req notificacionDTO.CreateNotificacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	notificacion := notificacionModel.NotificacionModel{
		NotificacionMensaje: req.NotificacionMensaje,
		NotificacionLeida:   false,
		CesiTutoreID:        alumno.CesiTutoreID,
		CesiAlumnoID:        alumno.AlumnoID,
	}
	if err := ctl.DB.Create(&notificacion).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la notificación")
	}
	return helper.Created(c, notificacion)
}

/* =========================================================
   POR TUTOR
   GET /api/notificaciones/tutor/:tutorId
   ========================================================= */

func (ctl *NotificacionController) PorTutor(c *fiber.Ctx) error {
	tutorID, err := uuid.Parse(c.Params("tutorId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	notificaciones := []notificacionModel.NotificacionModel{}
	if err := ctl.DB.Where("cesi_tutore_id = ?", tutorID).
		Order("created_at").Find(&notificaciones).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, notificaciones)
}

/* =========================================================
   ACTUALIZAR
   PUT /api/notificaciones/alumno/:alumnoId/notificacion/:id
   ========================================================= */

func (ctl *NotificacionController) Update(c *fiber.Ctx) error {
	notificacion, err := ctl.cargar(c)
	if err != nil {
		return err
	}

	var req notificacionDTO.UpdateNotificacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.NotificacionMensaje != "" {
		notificacion.NotificacionMensaje = req.NotificacionMensaje
	}
	if req.NotificacionLeida != nil {
		notificacion.NotificacionLeida = *req.NotificacionLeida
	}
	if err := ctl.DB.Save(notificacion).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la notificación")
	}
	return helper.Success(c, notificacion)
}

/* =========================================================
   ELIMINAR
   DELETE /api/notificaciones/alumno/:alumnoId/notificacion/:id
   ========================================================= */

func (ctl *NotificacionController) Destroy(c *fiber.Ctx) error {
	notificacion, err := ctl.cargar(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(notificacion).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la notificación")
	}
	return helper.Success(c, fiber.Map{"success": "Notificación eliminada exitosamente"})
}

func (ctl *NotificacionController) cargar(c *fiber.Ctx) (*notificacionModel.NotificacionModel, error) {
	alumnoID, err := uuid.Parse(c.Params("alumnoId"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var notificacion notificacionModel.NotificacionModel
	if err := ctl.DB.Where("notificacion_id = ? AND cesi_alumno_id = ?", id, alumnoID).First(&notificacion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Notificación no encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &notificacion, nil
}
