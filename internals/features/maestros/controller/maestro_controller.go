package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	escuelaModel "cesi_backend/internals/features/escuelas/model"
	maestroDTO "cesi_backend/internals/features/maestros/dto"
	maestroModel "cesi_backend/internals/features/maestros/model"
	userModel "cesi_backend/internals/features/users/user/model"
	helper "cesi_backend/internals/helpers"
	"cesi_backend/internals/helpers/scope"
	"cesi_backend/internals/helpers/storage"
)

var validate *validator.Validate = helper.NewValidator()

type MaestroController struct {
	DB *gorm.DB
}

func NewMaestroController(db *gorm.DB) *MaestroController {
	return &MaestroController{DB: db}
}

/* =========================================================
   LISTAR
   GET /api/maestros?nombre=
   ========================================================= */

func (ctl *MaestroController) Index(c *fiber.Ctx) error {
	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	maestros := []maestroModel.MaestroModel{}
	if len(ids) > 0 {
		q := ctl.DB.Where("cesi_escuela_id IN ?", ids)
		if nombre := strings.TrimSpace(c.Query("nombre")); nombre != "" {
			q = q.Where("maestro_nombre LIKE ?", "%"+nombre+"%")
		}
		if err := q.Find(&maestros).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
		}
	}
	return helper.Success(c, fiber.Map{"maestros": maestros})
}

/* =========================================================
   COLORES DE LA ESCUELA
   GET /api/maestros/:maestroId/colores
   ========================================================= */

func (ctl *MaestroController) ColoresDeEscuela(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("maestroId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	var maestro maestroModel.MaestroModel
	if err := ctl.DB.First(&maestro, "maestro_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Maestro no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var ui escuelaModel.UiModel
	if err := ctl.DB.Where("cesi_escuela_id = ?", maestro.CesiEscuelaID).First(&ui).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "No se encontraron colores para la escuela")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, fiber.Map{"colores": ui})
}

/* =========================================================
   MOSTRAR
   GET /api/maestros/:id
   ========================================================= */

func (ctl *MaestroController) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	var maestro maestroModel.MaestroModel
	if err := ctl.DB.First(&maestro, "maestro_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Maestro no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.Success(c, maestro)
}

/* =========================================================
   CREAR
   POST /api/maestros
   ========================================================= */

// Store crea el maestro y su credencial en una sola transacción; si el
// commit falla la foto recién guardada se borra (limpieza compensatoria).
func (ctl *MaestroController) Store(c *fiber.Ctx) error {
	var req maestroDTO.CreateMaestroRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.MaestroNombre = strings.TrimSpace(req.MaestroNombre)
	req.MaestroUsuario = strings.TrimSpace(strings.ToLower(req.MaestroUsuario))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var escuelas int64
	if err := ctl.DB.Model(&escuelaModel.EscuelaModel{}).Where("escuela_id = ?", req.CesiEscuelaID).Count(&escuelas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if escuelas == 0 {
		return helper.ValidationFields(c, map[string]string{"cesi_escuela_id": "La escuela seleccionada no existe."})
	}

	if tomado, err := ctl.correoTomado(req.MaestroUsuario, uuid.Nil); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	} else if tomado {
		return helper.ValidationFields(c, map[string]string{"maestro_usuario": "El correo electrónico ya está registrado."})
	}

	foto := ""
	if fh, err := c.FormFile("maestro_foto"); err == nil && fh != nil {
		foto, err = storage.GuardarFoto("maestros", fh)
		if err != nil {
			return helper.ValidationFields(c, map[string]string{"maestro_foto": err.Error()})
		}
	}

	maestro := maestroModel.MaestroModel{
		MaestroNombre:   req.MaestroNombre,
		MaestroUsuario:  req.MaestroUsuario,
		MaestroTelefono: req.MaestroTelefono,
		MaestroFoto:     foto,
		CesiEscuelaID:   req.CesiEscuelaID,
	}
	usr := userModel.UserModel{
		UserName:   req.MaestroNombre,
		UserEmail:  req.MaestroUsuario,
		UserRole:   constants.RoleMaestro,
		UserActivo: true,
	}
	if err := usr.SetPassword(req.MaestroPassword); err != nil {
		_ = storage.Eliminar(foto)
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&maestro).Error; err != nil {
			return err
		}
		return tx.Create(&usr).Error
	}); err != nil {
		_ = storage.Eliminar(foto)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el maestro")
	}

	return helper.Created(c, fiber.Map{"message": "Maestro creado exitosamente", "maestro": maestro})
}

/* =========================================================
   ACTUALIZAR
   PUT /api/maestros/:id
   ========================================================= */

func (ctl *MaestroController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	var maestro maestroModel.MaestroModel
	if err := ctl.DB.First(&maestro, "maestro_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Maestro no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var req maestroDTO.UpdateMaestroRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.MaestroNombre = strings.TrimSpace(req.MaestroNombre)
	req.MaestroUsuario = strings.TrimSpace(strings.ToLower(req.MaestroUsuario))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if tomado, err := ctl.correoTomado(req.MaestroUsuario, maestro.MaestroID); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	} else if tomado {
		return helper.ValidationFields(c, map[string]string{"maestro_usuario": "El correo electrónico ya está registrado."})
	}

	fotoAnterior := maestro.MaestroFoto
	fotoNueva := ""
	if fh, err := c.FormFile("maestro_foto"); err == nil && fh != nil {
		fotoNueva, err = storage.GuardarFoto("maestros", fh)
		if err != nil {
			return helper.ValidationFields(c, map[string]string{"maestro_foto": err.Error()})
		}
	}

	correoAnterior := maestro.MaestroUsuario
	maestro.MaestroNombre = req.MaestroNombre
	maestro.MaestroUsuario = req.MaestroUsuario
	maestro.MaestroTelefono = req.MaestroTelefono
	maestro.CesiEscuelaID = req.CesiEscuelaID
	if fotoNueva != "" {
		maestro.MaestroFoto = fotoNueva
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&maestro).Error; err != nil {
			return err
		}

		var usr userModel.UserModel
		if err := tx.Where("user_email = ?", correoAnterior).First(&usr).Error; err != nil {
			return err
		}
		usr.UserName = req.MaestroNombre
		usr.UserEmail = req.MaestroUsuario
		usr.UserRole = constants.RoleMaestro
		if req.MaestroPassword != "" {
			if err := usr.SetPassword(req.MaestroPassword); err != nil {
				return err
			}
		}
		return tx.Save(&usr).Error
	}); err != nil {
		_ = storage.Eliminar(fotoNueva)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el maestro")
	}

	if fotoNueva != "" {
		_ = storage.Eliminar(fotoAnterior)
	}
	return helper.Success(c, fiber.Map{"message": "Maestro actualizado exitosamente", "maestro": maestro})
}

/* =========================================================
   ELIMINAR
   DELETE /api/maestros/:id
   ========================================================= */

func (ctl *MaestroController) Destroy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	var maestro maestroModel.MaestroModel
	if err := ctl.DB.First(&maestro, "maestro_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Maestro no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_email = ?", maestro.MaestroUsuario).Delete(&userModel.UserModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&maestro).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el maestro")
	}

	_ = storage.Eliminar(maestro.MaestroFoto)
	return helper.Success(c, fiber.Map{"success": "Maestro eliminado exitosamente"})
}

// correoTomado verifica unicidad del correo en cesi_maestros y users; al
// actualizar se ignora el propio registro.
func (ctl *MaestroController) correoTomado(email string, ignorarMaestro uuid.UUID) (bool, error) {
	var count int64
	q := ctl.DB.Model(&maestroModel.MaestroModel{}).Where("maestro_usuario = ?", email)
	if ignorarMaestro != uuid.Nil {
		q = q.Where("maestro_id <> ?", ignorarMaestro)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	if ignorarMaestro != uuid.Nil {
		var actual maestroModel.MaestroModel
		if err := ctl.DB.First(&actual, "maestro_id = ?", ignorarMaestro).Error; err == nil && actual.MaestroUsuario == email {
			return false, nil
		}
	}
	if err := ctl.DB.Model(&userModel.UserModel{}).Where("user_email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
