package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	responsableModel "cesi_backend/internals/features/responsables/model"
	tutorModel "cesi_backend/internals/features/tutores/model"
	helper "cesi_backend/internals/helpers"
	"cesi_backend/internals/helpers/scope"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

/* =========================================================
   RESPONSABLES INACTIVOS
   GET /api/dashboard/responsables-inactivos
   ========================================================= */

// ResponsablesInactivos lista responsables sin activar cuyos tutores
// pertenecen a escuelas del administrador autenticado.
func (ctl *DashboardController) ResponsablesInactivos(c *fiber.Ctx) error {
	ids, err := scope.EscuelasDeAdmin(ctl.DB, helper.GetEmailFromToken(c))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	responsables := []responsableModel.ResponsableModel{}
	if len(ids) > 0 {
		err := ctl.DB.
			Where("responsable_activacion = ?", false).
			Where("cesi_tutore_id IN (?)",
				ctl.DB.Model(&tutorModel.TutorModel{}).Select("tutor_id").Where("cesi_escuela_id IN ?", ids)).
			Find(&responsables).Error
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
		}
	}
	return helper.Success(c, responsables)
}
