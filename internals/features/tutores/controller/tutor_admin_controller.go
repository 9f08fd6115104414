package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	alumnoModel "cesi_backend/internals/features/alumnos/model"
	escuelaModel "cesi_backend/internals/features/escuelas/model"
	responsableModel "cesi_backend/internals/features/responsables/model"
	tutorDTO "cesi_backend/internals/features/tutores/dto"
	tutorModel "cesi_backend/internals/features/tutores/model"
	userModel "cesi_backend/internals/features/users/user/model"
	helper "cesi_backend/internals/helpers"
	"cesi_backend/internals/helpers/scope"
	"cesi_backend/internals/helpers/storage"
)

var validate *validator.Validate = helper.NewValidator()

// TutorAdminController cubre la administración de tutores. El alta de un
// tutor escribe tres registros en una sola transacción: el perfil, la
// credencial y el responsable propio del tutor (activado).
type TutorAdminController struct {
	DB *gorm.DB
}

func NewTutorAdminController(db *gorm.DB) *TutorAdminController {
	return &TutorAdminController{DB: db}
}

/* =========================================================
   LISTAR
   GET /api/tutores?nombre=
   ========================================================= */

func (ctl *TutorAdminController) Index(c *fiber.Ctx) error {
	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	tutores := []tutorModel.TutorModel{}
	if len(ids) > 0 {
		q := ctl.DB.Where("cesi_escuela_id IN ?", ids)
		if nombre := strings.TrimSpace(c.Query("nombre")); nombre != "" {
			q = q.Where("tutor_nombre LIKE ?", "%"+nombre+"%")
		}
		if err := q.Find(&tutores).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
		}
	}
	return helper.Success(c, tutores)
}

/* =========================================================
   CREAR
   POST /api/tutores
   ========================================================= */

func (ctl *TutorAdminController) Store(c *fiber.Ctx) error {
	var req tutorDTO.CreateTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.TutorNombre = strings.TrimSpace(req.TutorNombre)
	req.TutorUsuario = strings.TrimSpace(strings.ToLower(req.TutorUsuario))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var escuelas int64
	if err := ctl.DB.Model(&escuelaModel.EscuelaModel{}).Where("escuela_id = ?", req.CesiEscuelaID).Count(&escuelas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if escuelas == 0 {
		return helper.ValidationFields(c, map[string]string{"cesi_escuela_id": "La escuela seleccionada no es válida."})
	}

	if tomado, err := ctl.correoTomado(req.TutorUsuario, uuid.Nil); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	} else if tomado {
		return helper.ValidationFields(c, map[string]string{"tutor_usuario": "El correo electrónico ya está registrado."})
	}

	fh, err := c.FormFile("tutor_foto")
	if err != nil || fh == nil {
		return helper.ValidationFields(c, map[string]string{"tutor_foto": "El campo foto es obligatorio."})
	}
	foto, err := storage.GuardarFoto("tutores", fh)
	if err != nil {
		return helper.ValidationFields(c, map[string]string{"tutor_foto": err.Error()})
	}

	tutor := tutorModel.TutorModel{
		TutorNombre:   req.TutorNombre,
		TutorUsuario:  req.TutorUsuario,
		TutorTelefono: req.TutorTelefono,
		TutorFoto:     foto,
		CesiEscuelaID: req.CesiEscuelaID,
	}
	usr := userModel.UserModel{
		UserName:   req.TutorNombre,
		UserEmail:  req.TutorUsuario,
		UserRole:   constants.RoleTutor,
		UserActivo: true,
	}
	if err := usr.SetPassword(req.TutorPassword); err != nil {
		_ = storage.Eliminar(foto)
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tutor).Error; err != nil {
			return err
		}
		if err := tx.Create(&usr).Error; err != nil {
			return err
		}
		// el tutor también puede recoger a sus alumnos
		propio := responsableModel.ResponsableModel{
			ResponsableNombre:     req.TutorNombre,
			ResponsableUsuario:    req.TutorUsuario,
			ResponsableTelefono:   req.TutorTelefono,
			ResponsableFoto:       tutor.TutorFoto,
			ResponsableActivacion: true,
			CesiTutoreID:          tutor.TutorID,
		}
		return tx.Create(&propio).Error
	}); err != nil {
		_ = storage.Eliminar(foto)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el tutor")
	}

	return helper.Created(c, tutor)
}

/* =========================================================
   ACTUALIZAR
   PUT /api/tutores/:id
   ========================================================= */

// Update sincroniza perfil, credencial y responsable propio. La contraseña
// sólo se rehashea cuando viene no vacía.
func (ctl *TutorAdminController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	var tutor tutorModel.TutorModel
	if err := ctl.DB.First(&tutor, "tutor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Tutor no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var req tutorDTO.UpdateTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.TutorNombre = strings.TrimSpace(req.TutorNombre)
	req.TutorUsuario = strings.TrimSpace(strings.ToLower(req.TutorUsuario))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if tomado, err := ctl.correoTomado(req.TutorUsuario, tutor.TutorID); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	} else if tomado {
		return helper.ValidationFields(c, map[string]string{"tutor_usuario": "El correo electrónico ya está registrado."})
	}

	fotoAnterior := tutor.TutorFoto
	fotoNueva := ""
	if fh, err := c.FormFile("tutor_foto"); err == nil && fh != nil {
		fotoNueva, err = storage.GuardarFoto("tutores", fh)
		if err != nil {
			return helper.ValidationFields(c, map[string]string{"tutor_foto": err.Error()})
		}
	}

	correoAnterior := tutor.TutorUsuario
	tutor.TutorNombre = req.TutorNombre
	tutor.TutorUsuario = req.TutorUsuario
	tutor.TutorTelefono = req.TutorTelefono
	tutor.CesiEscuelaID = req.CesiEscuelaID
	if fotoNueva != "" {
		tutor.TutorFoto = fotoNueva
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&tutor).Error; err != nil {
			return err
		}

		var usr userModel.UserModel
		if err := tx.Where("user_email = ?", correoAnterior).First(&usr).Error; err != nil {
			return err
		}
		usr.UserName = req.TutorNombre
		usr.UserEmail = req.TutorUsuario
		usr.UserRole = constants.RoleTutor
		if req.TutorPassword != "" {
			if err := usr.SetPassword(req.TutorPassword); err != nil {
				return err
			}
		}
		if err := tx.Save(&usr).Error; err != nil {
			return err
		}

		var propio responsableModel.ResponsableModel
		if err := tx.Where("cesi_tutore_id = ? AND responsable_usuario = ?", tutor.TutorID, correoAnterior).
			First(&propio).Error; err != nil {
			return err
		}
		propio.ResponsableNombre = req.TutorNombre
		propio.ResponsableUsuario = req.TutorUsuario
		propio.ResponsableTelefono = req.TutorTelefono
		propio.ResponsableFoto = tutor.TutorFoto
		propio.ResponsableActivacion = true
		return tx.Save(&propio).Error
	}); err != nil {
		_ = storage.Eliminar(fotoNueva)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el tutor")
	}

	if fotoNueva != "" {
		_ = storage.Eliminar(fotoAnterior)
	}
	return helper.Success(c, tutor)
}

/* =========================================================
   ELIMINAR
   DELETE /api/tutores/:id
   ========================================================= */

// Destroy limpia en cascada: credenciales de los responsables dependientes,
// los responsables, los alumnos del tutor, la credencial propia y la foto
// almacenada. Repetir la llamada responde 404 sin otro efecto.
func (ctl *TutorAdminController) Destroy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID no válido")
	}

	var tutor tutorModel.TutorModel
	if err := ctl.DB.First(&tutor, "tutor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Tutor no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
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
		if err := tx.Where("cesi_tutore_id = ?", tutor.TutorID).Delete(&alumnoModel.AlumnoModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_email = ?", tutor.TutorUsuario).Delete(&userModel.UserModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tutor).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el tutor")
	}

	_ = storage.Eliminar(tutor.TutorFoto)
	return helper.Success(c, fiber.Map{"success": "Tutor eliminado exitosamente"})
}

func (ctl *TutorAdminController) correoTomado(email string, ignorarTutor uuid.UUID) (bool, error) {
	var count int64
	q := ctl.DB.Model(&tutorModel.TutorModel{}).Where("tutor_usuario = ?", email)
	if ignorarTutor != uuid.Nil {
		q = q.Where("tutor_id <> ?", ignorarTutor)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	if ignorarTutor != uuid.Nil {
		var actual tutorModel.TutorModel
		if err := ctl.DB.First(&actual, "tutor_id = ?", ignorarTutor).Error; err == nil && actual.TutorUsuario == email {
			return false, nil
		}
	}
	if err := ctl.DB.Model(&userModel.UserModel{}).Where("user_email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
