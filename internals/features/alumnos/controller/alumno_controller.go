package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alumnoDTO "cesi_backend/internals/features/alumnos/dto"
	alumnoModel "cesi_backend/internals/features/alumnos/model"
	salonModel "cesi_backend/internals/features/salones/model"
	tutorModel "cesi_backend/internals/features/tutores/model"
	helper "cesi_backend/internals/helpers"
	"cesi_backend/internals/helpers/scope"
	"cesi_backend/internals/helpers/storage"
)

var validate *validator.Validate = helper.NewValidator()

// AlumnoController administra alumnos dentro del alcance del administrador:
// todo listado y toda carga por ID filtran por los tutores de sus escuelas.
type AlumnoController struct {
	DB *gorm.DB
}

func NewAlumnoController(db *gorm.DB) *AlumnoController {
	return &AlumnoController{DB: db}
}

/* =========================================================
   LISTAR
   GET /api/alumnos?salon=&tutor=
   ========================================================= */

func (ctl *AlumnoController) Index(c *fiber.Ctx) error {
	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	alumnos := []alumnoModel.AlumnoModel{}
	if len(ids) > 0 {
		q := ctl.DB.Where("cesi_tutore_id IN (?)", ctl.tutoresDeEscuelas(ids))
		if salon := strings.TrimSpace(c.Query("salon")); salon != "" {
			id, err := uuid.Parse(salon)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "Filtro de salón no válido")
			}
			q = q.Where("cesi_salone_id = ?", id)
		}
		if tutor := strings.TrimSpace(c.Query("tutor")); tutor != "" {
			id, err := uuid.Parse(tutor)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "Filtro de tutor no válido")
			}
			q = q.Where("cesi_tutore_id = ?", id)
		}
		if err := q.Find(&alumnos).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
		}
	}
	return helper.Success(c, alumnos)
}

/* =========================================================
   CREAR
   POST /api/alumnos
   ========================================================= */

// Store exige tutor y salón existentes, ambos de escuelas del administrador.
func (ctl *AlumnoController) Store(c *fiber.Ctx) error {
	var req alumnoDTO.CreateAlumnoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.AlumnoNombre = strings.TrimSpace(req.AlumnoNombre)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if fields, err := ctl.validarReferencias(ids, req.CesiTutoreID, req.CesiSaloneID); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	} else if len(fields) > 0 {
		return helper.ValidationFields(c, fields)
	}

	foto := ""
	if fh, err := c.FormFile("alumno_foto"); err == nil && fh != nil {
		foto, err = storage.GuardarFoto("alumnos", fh)
		if err != nil {
			return helper.ValidationFields(c, map[string]string{"alumno_foto": err.Error()})
		}
	}

	alumno := alumnoModel.AlumnoModel{
		AlumnoNombre: req.AlumnoNombre,
		AlumnoFoto:   foto,
		CesiTutoreID: req.CesiTutoreID,
		CesiSaloneID: req.CesiSaloneID,
	}
	if err := ctl.DB.Create(&alumno).Error; err != nil {
		_ = storage.Eliminar(foto)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el alumno")
	}
	return helper.Created(c, alumno)
}

/* =========================================================
   MOSTRAR
   GET /api/alumnos/:id
   ========================================================= */

func (ctl *AlumnoController) Show(c *fiber.Ctx) error {
	alumno, err := ctl.alumnoEnAlcance(c)
	if err != nil {
		return err
	}
	return helper.Success(c, alumno)
}

/* =========================================================
   ACTUALIZAR
   PUT /api/alumnos/:id
   ========================================================= */

func (ctl *AlumnoController) Update(c *fiber.Ctx) error {
	alumno, err := ctl.alumnoEnAlcance(c)
	if err != nil {
		return err
	}

	var req alumnoDTO.UpdateAlumnoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.AlumnoNombre = strings.TrimSpace(req.AlumnoNombre)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if fields, err := ctl.validarReferencias(ids, req.CesiTutoreID, req.CesiSaloneID); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	} else if len(fields) > 0 {
		return helper.ValidationFields(c, fields)
	}

	fotoAnterior := alumno.AlumnoFoto
	fotoNueva := ""
	if fh, err := c.FormFile("alumno_foto"); err == nil && fh != nil {
		fotoNueva, err = storage.GuardarFoto("alumnos", fh)
		if err != nil {
			return helper.ValidationFields(c, map[string]string{"alumno_foto": err.Error()})
		}
	}

	alumno.AlumnoNombre = req.AlumnoNombre
	alumno.CesiTutoreID = req.CesiTutoreID
	alumno.CesiSaloneID = req.CesiSaloneID
	if fotoNueva != "" {
		alumno.AlumnoFoto = fotoNueva
	}
	if err := ctl.DB.Save(alumno).Error; err != nil {
		_ = storage.Eliminar(fotoNueva)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el alumno")
	}

	if fotoNueva != "" {
		_ = storage.Eliminar(fotoAnterior)
	}
	return helper.Success(c, alumno)
}

/* =========================================================
   ELIMINAR
   DELETE /api/alumnos/:id
   ========================================================= */

func (ctl *AlumnoController) Destroy(c *fiber.Ctx) error {
	alumno, err := ctl.alumnoEnAlcance(c)
	if err != nil {
		return err
	}

	if err := ctl.DB.Delete(alumno).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el alumno")
	}
	_ = storage.Eliminar(alumno.AlumnoFoto)
	return helper.Success(c, fiber.Map{"success": "Alumno eliminado exitosamente"})
}

// alumnoEnAlcance carga el alumno del path y verifica que su tutor pertenezca
// a una escuela del administrador autenticado; fuera de alcance responde 404.
func (ctl *AlumnoController) alumnoEnAlcance(c *fiber.Ctx) (*alumnoModel.AlumnoModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	if len(ids) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado")
	}

	var alumno alumnoModel.AlumnoModel
	if err := ctl.DB.
		Where("alumno_id = ? AND cesi_tutore_id IN (?)", id, ctl.tutoresDeEscuelas(ids)).
		First(&alumno).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &alumno, nil
}

func (ctl *AlumnoController) tutoresDeEscuelas(escuelaIDs []uuid.UUID) *gorm.DB {
	return ctl.DB.Model(&tutorModel.TutorModel{}).Select("tutor_id").Where("cesi_escuela_id IN ?", escuelaIDs)
}

// validarReferencias acepta sólo tutores y salones dentro del alcance; una
// referencia de otra escuela se reporta igual que una inexistente.
func (ctl *AlumnoController) validarReferencias(escuelaIDs []uuid.UUID, tutorID, salonID uuid.UUID) (map[string]string, error) {
	fields := map[string]string{}

	var count int64
	if len(escuelaIDs) > 0 {
		if err := ctl.DB.Model(&tutorModel.TutorModel{}).
			Where("tutor_id = ? AND cesi_escuela_id IN ?", tutorID, escuelaIDs).Count(&count).Error; err != nil {
			return nil, err
		}
	}
	if count == 0 {
		fields["cesi_tutore_id"] = "El tutor seleccionado no existe."
	}

	count = 0
	if len(escuelaIDs) > 0 {
		if err := ctl.DB.Model(&salonModel.SalonModel{}).
			Where("salon_id = ? AND cesi_escuela_id IN ?", salonID, escuelaIDs).Count(&count).Error; err != nil {
			return nil, err
		}
	}
	if count == 0 {
		fields["cesi_salone_id"] = "El salón seleccionado no existe."
	}
	return fields, nil
}
