package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	salonDTO "cesi_backend/internals/features/salones/dto"
	salonModel "cesi_backend/internals/features/salones/model"
	helper "cesi_backend/internals/helpers"
	"cesi_backend/internals/helpers/scope"
)

var validate *validator.Validate = helper.NewValidator()

type SalonController struct {
	DB *gorm.DB
}

func NewSalonController(db *gorm.DB) *SalonController {
	return &SalonController{DB: db}
}

/* =========================================================
   LISTAR
   GET /api/salones?nombre=
   ========================================================= */

func (ctl *SalonController) Index(c *fiber.Ctx) error {
	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	salones := []salonModel.SalonModel{}
	if len(ids) > 0 {
		q := ctl.DB.Where("cesi_escuela_id IN ?", ids)
		if nombre := strings.TrimSpace(c.Query("nombre")); nombre != "" {
			q = q.Where("salon_nombre LIKE ?", "%"+nombre+"%")
		}
		if err := q.Find(&salones).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
		}
	}
	return helper.Success(c, salones)
}

/* =========================================================
   CREAR
   POST /api/salones
   ========================================================= */

func (ctl *SalonController) Store(c *fiber.Ctx) error {
	var req salonDTO.CreateSalonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.SalonNombre = strings.TrimSpace(req.SalonNombre)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if !scope.Contiene(ids, req.CesiEscuelaID) {
		return helper.ValidationFields(c, map[string]string{"cesi_escuela_id": "La escuela seleccionada no es válida."})
	}

	salon := salonModel.SalonModel{
		SalonNombre:   req.SalonNombre,
		SalonGrado:    req.SalonGrado,
		CesiEscuelaID: req.CesiEscuelaID,
	}
	if err := ctl.DB.Create(&salon).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el salón")
	}
	return helper.Created(c, salon)
}

/* =========================================================
   MOSTRAR
   GET /api/salones/:id
   ========================================================= */

func (ctl *SalonController) Show(c *fiber.Ctx) error {
	salon, err := ctl.salonEnAlcance(c)
	if err != nil {
		return err
	}
	return helper.Success(c, salon)
}

/* =========================================================
   ACTUALIZAR
   PUT /api/salones/:id
   ========================================================= */

func (ctl *SalonController) Update(c *fiber.Ctx) error {
	salon, err := ctl.salonEnAlcance(c)
	if err != nil {
		return err
	}

	var req salonDTO.UpdateSalonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.SalonNombre = strings.TrimSpace(req.SalonNombre)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	salon.SalonNombre = req.SalonNombre
	salon.SalonGrado = req.SalonGrado
	salon.CesiEscuelaID = req.CesiEscuelaID
	if err := ctl.DB.Save(salon).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el salón")
	}
	return helper.Success(c, salon)
}

/* =========================================================
   ELIMINAR
   DELETE /api/salones/:id
   ========================================================= */

func (ctl *SalonController) Destroy(c *fiber.Ctx) error {
	salon, err := ctl.salonEnAlcance(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(salon).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el salón")
	}
	return helper.Success(c, fiber.Map{"success": "Salón eliminado exitosamente"})
}

// salonEnAlcance carga el salón del path y verifica que pertenezca a una
// escuela del administrador autenticado; fuera de alcance responde 404.
func (ctl *SalonController) salonEnAlcance(c *fiber.Ctx) (*salonModel.SalonModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}

	var salon salonModel.SalonModel
	if err := ctl.DB.First(&salon, "salon_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Salón no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	if !scope.Contiene(ids, salon.CesiEscuelaID) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Salón no encontrado")
	}
	return &salon, nil
}
