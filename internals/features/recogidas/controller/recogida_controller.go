package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	alumnoModel "cesi_backend/internals/features/alumnos/model"
	maestroModel "cesi_backend/internals/features/maestros/model"
	recogidaDTO "cesi_backend/internals/features/recogidas/dto"
	recogidaModel "cesi_backend/internals/features/recogidas/model"
	recogidaService "cesi_backend/internals/features/recogidas/service"
	responsableModel "cesi_backend/internals/features/responsables/model"
	salonModel "cesi_backend/internals/features/salones/model"
	tutorModel "cesi_backend/internals/features/tutores/model"
	helper "cesi_backend/internals/helpers"
	"cesi_backend/internals/helpers/scope"
)

var validate *validator.Validate = helper.NewValidator()

// RecogidaController implementa el flujo de recogidas: generación con guardia
// de responsable activado, listados por tutor y por estatus, avance de
// estatus sin tabla de transiciones y reportes PDF.
type RecogidaController struct {
	DB *gorm.DB
}

func NewRecogidaController(db *gorm.DB) *RecogidaController {
	return &RecogidaController{DB: db}
}

/* =========================================================
   ALUMNOS SIN RECOGIDA ABIERTA
   GET /api/recogida/alumnos/:tutorId
   ========================================================= */

func (ctl *RecogidaController) AlumnosSinRecogida(c *fiber.Ctx) error {
	tutor, err := ctl.tutorPorID(c.Params("tutorId"))
	if err != nil {
		return err
	}

	abiertas := ctl.DB.Model(&recogidaModel.RecogidaModel{}).
		Select("cesi_alumno_id").
		Where("recogida_estatus = ?", recogidaModel.EstatusPendiente)

	alumnos := []alumnoModel.AlumnoModel{}
	if err := ctl.DB.
		Where("cesi_tutore_id = ?", tutor.TutorID).
		Where("alumno_id NOT IN (?)", abiertas).
		Find(&alumnos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, alumnos)
}

/* =========================================================
   GENERAR
   POST /api/recogida/generar
   ========================================================= */

// Generar inserta la recogida en estatus pendiente. Exige que el responsable
// exista, esté activado y pertenezca al tutor del alumno.
func (ctl *RecogidaController) Generar(c *fiber.Ctx) error {
	var req recogidaDTO.GenerarRecogidaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var alumno alumnoModel.AlumnoModel
	if err := ctl.DB.First(&alumno, "alumno_id = ?", req.CesiAlumnoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ValidationFields(c, map[string]string{"cesi_alumno_id": "El alumno seleccionado no existe."})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var responsable responsableModel.ResponsableModel
	if err := ctl.DB.First(&responsable, "responsable_id = ?", req.CesiResponsableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ValidationFields(c, map[string]string{"cesi_responsable_id": "El responsable seleccionado no existe."})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if !responsable.ResponsableActivacion {
		return helper.ValidationFields(c, map[string]string{"cesi_responsable_id": "El responsable no está activado para recoger alumnos."})
	}
	if responsable.CesiTutoreID != alumno.CesiTutoreID {
		return helper.ValidationFields(c, map[string]string{"cesi_responsable_id": "El responsable no está autorizado para este alumno."})
	}

	recogida := recogidaModel.RecogidaModel{
		RecogidaFecha:         datatypes.Date(time.Now()),
		RecogidaEstatus:       recogidaModel.EstatusPendiente,
		RecogidaObservaciones: req.RecogidaObservaciones,
		CesiResponsableID:     req.CesiResponsableID,
		CesiAlumnoID:          req.CesiAlumnoID,
	}
	if err := ctl.DB.Create(&recogida).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar la recogida")
	}
	return helper.Created(c, recogida)
}

/* =========================================================
   POR TUTOR
   GET /api/recogida/tutor/:tutorId
   ========================================================= */

func (ctl *RecogidaController) PorTutor(c *fiber.Ctx) error {
	tutor, err := ctl.tutorPorID(c.Params("tutorId"))
	if err != nil {
		return err
	}

	recogidas := []recogidaModel.RecogidaModel{}
	if err := ctl.DB.
		Where("cesi_alumno_id IN (?)", ctl.alumnosDeTutor(tutor.TutorID)).
		Order("created_at DESC").
		Find(&recogidas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, recogidas)
}

/* =========================================================
   POR ESTATUS
   GET /api/recogida/estatus?estatus=
   ========================================================= */

// PorEstatus filtra por estatus dentro del alcance del solicitante: un tutor
// ve las recogidas de sus alumnos, un responsable las suyas, un maestro y un
// administrador las de sus escuelas.
func (ctl *RecogidaController) PorEstatus(c *fiber.Ctx) error {
	estatus := c.Query("estatus")
	if !recogidaModel.EsEstatusValido(estatus) {
		return helper.ValidationFields(c, map[string]string{"estatus": "Debe ser uno de: pendiente completa cancelada."})
	}

	email := helper.GetEmailFromToken(c)
	q := ctl.DB.Where("recogida_estatus = ?", estatus)

	switch helper.GetRoleFromToken(c) {
	case constants.RoleTutor:
		var tutor tutorModel.TutorModel
		if err := ctl.DB.Where("tutor_usuario = ?", email).First(&tutor).Error; err != nil {
			return ctl.vacioONoEncontrado(c, err)
		}
		q = q.Where("cesi_alumno_id IN (?)", ctl.alumnosDeTutor(tutor.TutorID))

	case constants.RoleResponsable:
		var responsable responsableModel.ResponsableModel
		if err := ctl.DB.Where("responsable_usuario = ?", email).First(&responsable).Error; err != nil {
			return ctl.vacioONoEncontrado(c, err)
		}
		q = q.Where("cesi_responsable_id = ?", responsable.ResponsableID)

	case constants.RoleMaestro:
		var maestro maestroModel.MaestroModel
		if err := ctl.DB.Where("maestro_usuario = ?", email).First(&maestro).Error; err != nil {
			return ctl.vacioONoEncontrado(c, err)
		}
		q = q.Where("cesi_alumno_id IN (?)", ctl.alumnosDeEscuelas([]uuid.UUID{maestro.CesiEscuelaID}))

	case constants.RoleAdmin:
		ids, err := scope.EscuelasDeAdmin(ctl.DB, email)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
		}
		if len(ids) == 0 {
			return helper.Success(c, []recogidaModel.RecogidaModel{})
		}
		q = q.Where("cesi_alumno_id IN (?)", ctl.alumnosDeEscuelas(ids))

	default:
		return helper.Error(c, fiber.StatusForbidden, "Rol sin acceso a recogidas")
	}

	recogidas := []recogidaModel.RecogidaModel{}
	if err := q.Order("created_at DESC").Find(&recogidas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, recogidas)
}

/* =========================================================
   AVANZAR ESTATUS
   PUT /api/recogida/:id/estatus
   ========================================================= */

// ActualizarEstatus escribe el estatus pedido sin tabla de transiciones:
// cualquier estatus es alcanzable desde cualquier otro. Dos escrituras
// concurrentes resuelven por última escritura.
func (ctl *RecogidaController) ActualizarEstatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	var req recogidaDTO.UpdateEstatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var recogida recogidaModel.RecogidaModel
	if err := ctl.DB.First(&recogida, "recogida_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Recogida no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	recogida.RecogidaEstatus = req.RecogidaEstatus
	if err := ctl.DB.Save(&recogida).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el estatus")
	}
	return helper.Success(c, recogida)
}

/* =========================================================
   REPORTE PDF
   GET /api/recogida/reporte/:tutorId
   ========================================================= */

func (ctl *RecogidaController) GenerarReporte(c *fiber.Ctx) error {
	tutor, err := ctl.tutorPorID(c.Params("tutorId"))
	if err != nil {
		return err
	}

	reporte, err := recogidaService.GenerarReportePDF(ctl.DB, tutor)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar el reporte")
	}
	return helper.Created(c, reporte)
}

/* =========================================================
   REPORTES POR TUTOR
   GET /api/recogida/reportes/:tutorId
   ========================================================= */

func (ctl *RecogidaController) ReportesPorTutor(c *fiber.Ctx) error {
	tutor, err := ctl.tutorPorID(c.Params("tutorId"))
	if err != nil {
		return err
	}

	reportes := []recogidaModel.ReporteModel{}
	if err := ctl.DB.Where("cesi_tutore_id = ?", tutor.TutorID).
		Order("created_at DESC").Find(&reportes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, reportes)
}

func (ctl *RecogidaController) tutorPorID(param string) (*tutorModel.TutorModel, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}
	var tutor tutorModel.TutorModel
	if err := ctl.DB.First(&tutor, "tutor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tutor no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &tutor, nil
}

func (ctl *RecogidaController) alumnosDeTutor(tutorID uuid.UUID) *gorm.DB {
	return ctl.DB.Model(&alumnoModel.AlumnoModel{}).Select("alumno_id").Where("cesi_tutore_id = ?", tutorID)
}

func (ctl *RecogidaController) alumnosDeEscuelas(escuelaIDs []uuid.UUID) *gorm.DB {
	salones := ctl.DB.Model(&salonModel.SalonModel{}).Select("salon_id").Where("cesi_escuela_id IN ?", escuelaIDs)
	return ctl.DB.Model(&alumnoModel.AlumnoModel{}).Select("alumno_id").Where("cesi_salone_id IN (?)", salones)
}

// vacioONoEncontrado: un solicitante sin perfil ve un resultado vacío, no un
// 403; cualquier otro error de la consulta sube como 500.
func (ctl *RecogidaController) vacioONoEncontrado(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Success(c, []recogidaModel.RecogidaModel{})
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
}
