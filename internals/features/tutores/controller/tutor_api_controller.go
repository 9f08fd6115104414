package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alumnoModel "cesi_backend/internals/features/alumnos/model"
	escuelaModel "cesi_backend/internals/features/escuelas/model"
	maestroModel "cesi_backend/internals/features/maestros/model"
	responsableModel "cesi_backend/internals/features/responsables/model"
	salonModel "cesi_backend/internals/features/salones/model"
	tutorModel "cesi_backend/internals/features/tutores/model"
	userModel "cesi_backend/internals/features/users/user/model"
	helper "cesi_backend/internals/helpers"
	"cesi_backend/internals/helpers/storage"
)

// TutorApiController sirve al cliente móvil. Los :id de estas rutas son IDs
// de usuario: se resuelve correo de la credencial y de ahí el perfil tutor.
type TutorApiController struct {
	DB *gorm.DB
}

func NewTutorApiController(db *gorm.DB) *TutorApiController {
	return &TutorApiController{DB: db}
}

// tutorPorUserID resuelve user id -> correo -> tutor.
func (ctl *TutorApiController) tutorPorUserID(param string) (*tutorModel.TutorModel, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var usr userModel.UserModel
	if err := ctl.DB.First(&usr, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tutor no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}

	var tutor tutorModel.TutorModel
	if err := ctl.DB.Where("tutor_usuario = ?", usr.UserEmail).First(&tutor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tutor no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &tutor, nil
}

/* =========================================================
   GET /api/tutores/:id
   ========================================================= */

func (ctl *TutorApiController) ShowTutor(c *fiber.Ctx) error {
	tutor, err := ctl.tutorPorUserID(c.Params("id"))
	if err != nil {
		return err
	}
	return helper.Success(c, tutor)
}

/* =========================================================
   GET /api/tutores/:id/alumnos
   ========================================================= */

func (ctl *TutorApiController) ShowAlumnosByTutor(c *fiber.Ctx) error {
	tutor, err := ctl.tutorPorUserID(c.Params("id"))
	if err != nil {
		return err
	}

	alumnos := []alumnoModel.AlumnoModel{}
	if err := ctl.DB.Where("cesi_tutore_id = ?", tutor.TutorID).Find(&alumnos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, alumnos)
}

/* =========================================================
   GET /api/tutores/:tutorId/alumnos/:id
   ========================================================= */

// ShowAlumno devuelve el alumno con su contexto completo: tutor, salón,
// escuela y maestros del salón.
func (ctl *TutorApiController) ShowAlumno(c *fiber.Ctx) error {
	tutor, err := ctl.tutorPorUserID(c.Params("tutorId"))
	if err != nil {
		return err
	}

	alumnoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	var alumno alumnoModel.AlumnoModel
	if err := ctl.DB.Where("alumno_id = ? AND cesi_tutore_id = ?", alumnoID, tutor.TutorID).First(&alumno).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Alumno no encontrado o no autorizado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var salon salonModel.SalonModel
	if err := ctl.DB.First(&salon, "salon_id = ?", alumno.CesiSaloneID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	var escuela escuelaModel.EscuelaModel
	if err := ctl.DB.First(&escuela, "escuela_id = ?", salon.CesiEscuelaID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	maestros := []maestroModel.MaestroModel{}
	if err := ctl.DB.Where("cesi_escuela_id = ?", salon.CesiEscuelaID).Find(&maestros).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	return helper.Success(c, fiber.Map{
		"alumno":  alumno,
		"tutor":   tutor,
		"salon":   salon,
		"escuela": escuela,
		"maestro": maestros,
	})
}

/* =========================================================
   GET /api/tutores/:id/escuela/colores
   ========================================================= */

func (ctl *TutorApiController) ShowEscuelaColores(c *fiber.Ctx) error {
	tutor, err := ctl.tutorPorUserID(c.Params("id"))
	if err != nil {
		return err
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

/* =========================================================
   GET /api/tutores/:id/responsables
   ========================================================= */

func (ctl *TutorApiController) ShowResponsablesByTutor(c *fiber.Ctx) error {
	tutor, err := ctl.tutorPorUserID(c.Params("id"))
	if err != nil {
		return err
	}

	responsables := []responsableModel.ResponsableModel{}
	if err := ctl.DB.Where("cesi_tutore_id = ?", tutor.TutorID).Find(&responsables).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, responsables)
}

/* =========================================================
   GET /api/tutores/:tutorId/responsables/:id
   ========================================================= */

func (ctl *TutorApiController) ShowResponsable(c *fiber.Ctx) error {
	tutor, err := ctl.tutorPorUserID(c.Params("tutorId"))
	if err != nil {
		return err
	}

	responsableID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	var responsable responsableModel.ResponsableModel
	if err := ctl.DB.Where("responsable_id = ? AND cesi_tutore_id = ?", responsableID, tutor.TutorID).
		First(&responsable).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Responsable no encontrado o no autorizado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	return helper.Success(c, fiber.Map{
		"responsables": responsable,
		"tutores":      tutor,
	})
}

/* =========================================================
   POST /api/tutores/:id/foto
   ========================================================= */

func (ctl *TutorApiController) UpdateFoto(c *fiber.Ctx) error {
	tutor, err := ctl.tutorPorUserID(c.Params("id"))
	if err != nil {
		return err
	}

	fh, err := c.FormFile("tutor_foto")
	if err != nil || fh == nil {
		return helper.ValidationFields(c, map[string]string{"tutor_foto": "El campo foto es obligatorio."})
	}

	foto, err := storage.GuardarFoto("tutores", fh)
	if err != nil {
		return helper.ValidationFields(c, map[string]string{"tutor_foto": err.Error()})
	}

	fotoAnterior := tutor.TutorFoto
	tutor.TutorFoto = foto
	if err := ctl.DB.Save(tutor).Error; err != nil {
		_ = storage.Eliminar(foto)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la foto")
	}

	_ = storage.Eliminar(fotoAnterior)
	return helper.Success(c, fiber.Map{"success": "Foto actualizada exitosamente"})
}
