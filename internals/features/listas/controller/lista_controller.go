package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	listaDTO "cesi_backend/internals/features/listas/dto"
	listaModel "cesi_backend/internals/features/listas/model"
	maestroModel "cesi_backend/internals/features/maestros/model"
	salonModel "cesi_backend/internals/features/salones/model"
	helper "cesi_backend/internals/helpers"
)

var validate *validator.Validate = helper.NewValidator()

// ListaController gestiona las listas de pase que levanta el maestro
// autenticado sobre salones de su propia escuela.
type ListaController struct {
	DB *gorm.DB
}

func NewListaController(db *gorm.DB) *ListaController {
	return &ListaController{DB: db}
}

// maestroDelToken resuelve el perfil del maestro autenticado por su correo.
func (ctl *ListaController) maestroDelToken(c *fiber.Ctx) (*maestroModel.MaestroModel, error) {
	email := helper.GetEmailFromToken(c)
	if email == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token sin correo")
	}
	var maestro maestroModel.MaestroModel
	if err := ctl.DB.Where("maestro_usuario = ?", email).First(&maestro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Maestro no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &maestro, nil
}

/* =========================================================
   LISTAR
   GET /api/listas
   ========================================================= */

func (ctl *ListaController) Index(c *fiber.Ctx) error {
	maestro, err := ctl.maestroDelToken(c)
	if err != nil {
		return err
	}

	listas := []listaModel.ListaModel{}
	if err := ctl.DB.Where("cesi_maestro_id = ?", maestro.MaestroID).
		Order("lista_fecha DESC").Find(&listas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, listas)
}

/* =========================================================
   CREAR
   POST /api/listas/crear
   ========================================================= */

func (ctl *ListaController) Create(c *fiber.Ctx) error {
	maestro, err := ctl.maestroDelToken(c)
	if err != nil {
		return err
	}

	var req listaDTO.CreateListaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctl.salonDeEscuela(req.CesiSaloneID, maestro.CesiEscuelaID); err != nil {
		return helper.ValidationFields(c, map[string]string{"cesi_salone_id": err.Error()})
	}

	fecha, _ := time.Parse("2006-01-02", req.ListaFecha)
	lista := listaModel.ListaModel{
		ListaNombre:   req.ListaNombre,
		ListaFecha:    datatypes.Date(fecha),
		CesiMaestroID: maestro.MaestroID,
		CesiSaloneID:  req.CesiSaloneID,
	}
	if err := ctl.DB.Create(&lista).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la lista")
	}
	return helper.Created(c, lista)
}

/* =========================================================
   MOSTRAR
   GET /api/listas/:id
   ========================================================= */

func (ctl *ListaController) Show(c *fiber.Ctx) error {
	lista, err := ctl.cargar(c)
	if err != nil {
		return err
	}
	return helper.Success(c, lista)
}

/* =========================================================
   ACTUALIZAR
   PUT /api/listas/:id
   ========================================================= */

func (ctl *ListaController) Update(c *fiber.Ctx) error {
	lista, err := ctl.cargar(c)
	if err != nil {
		return err
	}

	var req listaDTO.UpdateListaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	maestro, err := ctl.maestroDelToken(c)
	if err != nil {
		return err
	}
	if err := ctl.salonDeEscuela(req.CesiSaloneID, maestro.CesiEscuelaID); err != nil {
		return helper.ValidationFields(c, map[string]string{"cesi_salone_id": err.Error()})
	}

	fecha, _ := time.Parse("2006-01-02", req.ListaFecha)
	lista.ListaNombre = req.ListaNombre
	lista.ListaFecha = datatypes.Date(fecha)
	lista.CesiSaloneID = req.CesiSaloneID
	if err := ctl.DB.Save(lista).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la lista")
	}
	return helper.Success(c, lista)
}

/* =========================================================
   ELIMINAR
   DELETE /api/listas/:id
   ========================================================= */

func (ctl *ListaController) Destroy(c *fiber.Ctx) error {
	lista, err := ctl.cargar(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(lista).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la lista")
	}
	return helper.Success(c, fiber.Map{"success": "Lista eliminada exitosamente"})
}

// cargar restringe el acceso a listas del maestro autenticado.
func (ctl *ListaController) cargar(c *fiber.Ctx) (*listaModel.ListaModel, error) {
	maestro, err := ctl.maestroDelToken(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var lista listaModel.ListaModel
	if err := ctl.DB.Where("lista_id = ? AND cesi_maestro_id = ?", id, maestro.MaestroID).First(&lista).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Lista no encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &lista, nil
}

func (ctl *ListaController) salonDeEscuela(salonID, escuelaID uuid.UUID) error {
	var count int64
	if err := ctl.DB.Model(&salonModel.SalonModel{}).
		Where("salon_id = ? AND cesi_escuela_id = ?", salonID, escuelaID).
		Count(&count).Error; err != nil {
		return errors.New("Error interno")
	}
	if count == 0 {
		return errors.New("El salón seleccionado no pertenece a su escuela.")
	}
	return nil
}
