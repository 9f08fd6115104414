package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alumnoModel "cesi_backend/internals/features/alumnos/model"
	escuelaDTO "cesi_backend/internals/features/escuelas/dto"
	escuelaModel "cesi_backend/internals/features/escuelas/model"
	maestroModel "cesi_backend/internals/features/maestros/model"
	responsableModel "cesi_backend/internals/features/responsables/model"
	salonModel "cesi_backend/internals/features/salones/model"
	tutorModel "cesi_backend/internals/features/tutores/model"
	userModel "cesi_backend/internals/features/users/user/model"
	helper "cesi_backend/internals/helpers"
	"cesi_backend/internals/helpers/scope"
	"cesi_backend/internals/helpers/storage"
)

var validate *validator.Validate = helper.NewValidator()

type EscuelaController struct {
	DB *gorm.DB
}

func NewEscuelaController(db *gorm.DB) *EscuelaController {
	return &EscuelaController{DB: db}
}

// adminDelToken resuelve el perfil de administrador del usuario autenticado.
func (ctl *EscuelaController) adminDelToken(c *fiber.Ctx) (*escuelaModel.AdministradorModel, error) {
	email := helper.GetEmailFromToken(c)
	if email == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token sin correo")
	}
	var admin escuelaModel.AdministradorModel
	if err := ctl.DB.Where("administrador_usuario = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Administrador no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno")
	}
	return &admin, nil
}

/* =========================================================
   LISTAR
   GET /api/escuelas
   ========================================================= */

func (ctl *EscuelaController) Index(c *fiber.Ctx) error {
	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	escuelas := []escuelaModel.EscuelaModel{}
	if len(ids) > 0 {
		if err := ctl.DB.Where("escuela_id IN ?", ids).Find(&escuelas).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
		}
	}
	return helper.Success(c, escuelas)
}

/* =========================================================
   CREAR
   POST /api/escuelas/crear
   ========================================================= */

func (ctl *EscuelaController) Create(c *fiber.Ctx) error {
	admin, err := ctl.adminDelToken(c)
	if err != nil {
		return err
	}

	var req escuelaDTO.CreateEscuelaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.EscuelaNombre = strings.TrimSpace(req.EscuelaNombre)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	escuela := escuelaModel.EscuelaModel{
		EscuelaNombre:       req.EscuelaNombre,
		EscuelaFoto:         req.EscuelaFoto,
		CesiAdministradorID: admin.AdministradorID,
	}
	if err := ctl.DB.Create(&escuela).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la escuela")
	}
	return helper.Created(c, escuela)
}

/* =========================================================
   MOSTRAR
   GET /api/escuelas/:id
   ========================================================= */

func (ctl *EscuelaController) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if !scope.Contiene(ids, id) {
		return helper.NotFound(c, "Escuela no encontrada")
	}

	var escuela escuelaModel.EscuelaModel
	if err := ctl.DB.First(&escuela, "escuela_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Escuela no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, escuela)
}

/* =========================================================
   ACTUALIZAR
   PUT /api/escuelas/:id
   ========================================================= */

func (ctl *EscuelaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if !scope.Contiene(ids, id) {
		return helper.NotFound(c, "Escuela no encontrada")
	}

	var req escuelaDTO.UpdateEscuelaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.EscuelaNombre = strings.TrimSpace(req.EscuelaNombre)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var escuela escuelaModel.EscuelaModel
	if err := ctl.DB.First(&escuela, "escuela_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Escuela no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	escuela.EscuelaNombre = req.EscuelaNombre
	if req.EscuelaFoto != "" {
		escuela.EscuelaFoto = req.EscuelaFoto
	}
	if err := ctl.DB.Save(&escuela).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la escuela")
	}
	return helper.Success(c, escuela)
}

/* =========================================================
   ELIMINAR
   DELETE /api/escuelas/:id
   ========================================================= */

// Destroy borra la escuela con todo lo que cuelga de ella: uis, salones,
// maestros y tutores con sus credenciales, responsables, alumnos y las fotos
// almacenadas. Segunda llamada con el mismo ID responde 404 sin otro efecto.
func (ctl *EscuelaController) Destroy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if !scope.Contiene(ids, id) {
		return helper.NotFound(c, "Escuela no encontrada")
	}

	var escuela escuelaModel.EscuelaModel
	if err := ctl.DB.First(&escuela, "escuela_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Escuela no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	fotos := []string{escuela.EscuelaFoto}
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var tutores []tutorModel.TutorModel
		if err := tx.Where("cesi_escuela_id = ?", id).Find(&tutores).Error; err != nil {
			return err
		}
		for _, tutor := range tutores {
			var responsables []responsableModel.ResponsableModel
			if err := tx.Where("cesi_tutore_id = ?", tutor.TutorID).Find(&responsables).Error; err != nil {
				return err
			}
			for _, r := range responsables {
				if err := tx.Where("user_email = ?", r.ResponsableUsuario).Delete(&userModel.UserModel{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("cesi_tutore_id = ?", tutor.TutorID).Delete(&responsableModel.ResponsableModel{}).Error; err != nil {
				return err
			}

			var alumnos []alumnoModel.AlumnoModel
			if err := tx.Where("cesi_tutore_id = ?", tutor.TutorID).Find(&alumnos).Error; err != nil {
				return err
			}
			for _, a := range alumnos {
				fotos = append(fotos, a.AlumnoFoto)
			}
			if err := tx.Where("cesi_tutore_id = ?", tutor.TutorID).Delete(&alumnoModel.AlumnoModel{}).Error; err != nil {
				return err
			}

			if err := tx.Where("user_email = ?", tutor.TutorUsuario).Delete(&userModel.UserModel{}).Error; err != nil {
				return err
			}
			fotos = append(fotos, tutor.TutorFoto)
		}
		if err := tx.Where("cesi_escuela_id = ?", id).Delete(&tutorModel.TutorModel{}).Error; err != nil {
			return err
		}

		var maestros []maestroModel.MaestroModel
		if err := tx.Where("cesi_escuela_id = ?", id).Find(&maestros).Error; err != nil {
			return err
		}
		for _, m := range maestros {
			if err := tx.Where("user_email = ?", m.MaestroUsuario).Delete(&userModel.UserModel{}).Error; err != nil {
				return err
			}
			fotos = append(fotos, m.MaestroFoto)
		}
		if err := tx.Where("cesi_escuela_id = ?", id).Delete(&maestroModel.MaestroModel{}).Error; err != nil {
			return err
		}

		if err := tx.Where("cesi_escuela_id = ?", id).Delete(&escuelaModel.UiModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cesi_escuela_id = ?", id).Delete(&salonModel.SalonModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&escuela).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la escuela")
	}

	for _, foto := range fotos {
		_ = storage.Eliminar(foto)
	}
	return helper.Success(c, fiber.Map{"success": "Escuela eliminada exitosamente"})
}

/* =========================================================
   UI / BRANDING
   PUT /api/escuelas/:id/ui — GET /api/escuelas/:id/ui
   ========================================================= */

func (ctl *EscuelaController) UpsertUi(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if !scope.Contiene(ids, id) {
		return helper.NotFound(c, "Escuela no encontrada")
	}

	var req escuelaDTO.UpsertUiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ui escuelaModel.UiModel
	err = ctl.DB.Where("cesi_escuela_id = ?", id).First(&ui).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ui = escuelaModel.UiModel{CesiEscuelaID: id}
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	ui.UiColor1 = req.UiColor1
	ui.UiColor2 = req.UiColor2
	ui.UiColor3 = req.UiColor3
	if req.UiLogo != "" {
		ui.UiLogo = req.UiLogo
	}
	if err := ctl.DB.Save(&ui).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar el branding")
	}
	return helper.Success(c, ui)
}

func (ctl *EscuelaController) ShowUi(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	var ui escuelaModel.UiModel
	if err := ctl.DB.Where("cesi_escuela_id = ?", id).First(&ui).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Colores de la escuela no encontrados")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, ui)
}
