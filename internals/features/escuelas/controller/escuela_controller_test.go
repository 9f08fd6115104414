package controller_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cesi_backend/internals/constants"
	alumnoModel "cesi_backend/internals/features/alumnos/model"
	escuelaModel "cesi_backend/internals/features/escuelas/model"
	escuelaRoute "cesi_backend/internals/features/escuelas/route"
	maestroModel "cesi_backend/internals/features/maestros/model"
	responsableModel "cesi_backend/internals/features/responsables/model"
	salonModel "cesi_backend/internals/features/salones/model"
	tutorModel "cesi_backend/internals/features/tutores/model"
	userModel "cesi_backend/internals/features/users/user/model"
	"cesi_backend/internals/testutil"
)

// nuevaAppEscuelas arma una escuela poblada: salón, maestro con credencial,
// tutor con credencial, responsable con credencial y un alumno inscrito.
func nuevaAppEscuelas(t *testing.T) (*fiber.App, *gorm.DB, string, escuelaModel.EscuelaModel) {
	t.Helper()

	db := testutil.NewTestDB(t)
	app := testutil.NewApp()
	escuelaRoute.EscuelaRoutes(app.Group("/api"), db)

	adminUsr, escuela := testutil.CrearAdminConEscuela(t, db, testutil.EmailUnico("admin"))
	salon := testutil.CrearSalon(t, db, escuela.EscuelaID, "3-C")
	tutor, _ := testutil.CrearTutor(t, db, escuela.EscuelaID, testutil.EmailUnico("tutor"))

	correoMaestro := testutil.EmailUnico("maestro")
	testutil.CrearUsuario(t, db, "Maestro Uno", correoMaestro, constants.RoleMaestro)
	maestro := maestroModel.MaestroModel{
		MaestroNombre:   "Maestro Uno",
		MaestroUsuario:  correoMaestro,
		MaestroTelefono: "5511122233",
		CesiEscuelaID:   escuela.EscuelaID,
	}
	if err := db.Create(&maestro).Error; err != nil {
		t.Fatalf("crear maestro: %v", err)
	}

	correoResponsable := testutil.EmailUnico("responsable")
	testutil.CrearUsuario(t, db, "Abuelo", correoResponsable, constants.RoleResponsable)
	responsable := responsableModel.ResponsableModel{
		ResponsableNombre:   "Abuelo",
		ResponsableUsuario:  correoResponsable,
		ResponsableTelefono: "5544455566",
		CesiTutoreID:        tutor.TutorID,
	}
	if err := db.Create(&responsable).Error; err != nil {
		t.Fatalf("crear responsable: %v", err)
	}

	alumno := alumnoModel.AlumnoModel{
		AlumnoNombre: "Alumno Uno",
		CesiTutoreID: tutor.TutorID,
		CesiSaloneID: salon.SalonID,
	}
	if err := db.Create(&alumno).Error; err != nil {
		t.Fatalf("crear alumno: %v", err)
	}

	return app, db, testutil.TokenPara(t, adminUsr), escuela
}

func borrarEscuela(t *testing.T, app *fiber.App, token string, id interface{}) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/escuelas/%s", id), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("petición: %v", err)
	}
	return resp
}

func TestDestroyEscuelaCascadaCompleta(t *testing.T) {
	app, db, token, escuela := nuevaAppEscuelas(t)

	resp := borrarEscuela(t, app, token, escuela.EscuelaID)
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, se esperaba 200 (cuerpo: %s)", resp.StatusCode, raw)
	}

	contar := func(modelo interface{}, cond string, args ...interface{}) int64 {
		var count int64
		if err := db.Model(modelo).Where(cond, args...).Count(&count).Error; err != nil {
			t.Fatalf("contar filas: %v", err)
		}
		return count
	}

	if n := contar(&salonModel.SalonModel{}, "cesi_escuela_id = ?", escuela.EscuelaID); n != 0 {
		t.Errorf("quedaron %d salones colgando", n)
	}
	if n := contar(&tutorModel.TutorModel{}, "cesi_escuela_id = ?", escuela.EscuelaID); n != 0 {
		t.Errorf("quedaron %d tutores colgando", n)
	}
	if n := contar(&maestroModel.MaestroModel{}, "cesi_escuela_id = ?", escuela.EscuelaID); n != 0 {
		t.Errorf("quedaron %d maestros colgando", n)
	}
	if n := contar(&alumnoModel.AlumnoModel{}, "1 = 1"); n != 0 {
		t.Errorf("quedaron %d alumnos colgando", n)
	}
	if n := contar(&responsableModel.ResponsableModel{}, "1 = 1"); n != 0 {
		t.Errorf("quedaron %d responsables colgando", n)
	}
	if n := contar(&escuelaModel.UiModel{}, "cesi_escuela_id = ?", escuela.EscuelaID); n != 0 {
		t.Errorf("quedaron %d uis colgando", n)
	}

	// sólo sobrevive la credencial del administrador
	if n := contar(&userModel.UserModel{}, "user_role <> ?", constants.RoleAdmin); n != 0 {
		t.Errorf("quedaron %d credenciales colgando", n)
	}
}

func TestDestroyEscuelaEsIdempotente(t *testing.T) {
	app, _, token, escuela := nuevaAppEscuelas(t)

	if resp := borrarEscuela(t, app, token, escuela.EscuelaID); resp.StatusCode != http.StatusOK {
		t.Fatalf("primera eliminación: status = %d, se esperaba 200", resp.StatusCode)
	}
	if resp := borrarEscuela(t, app, token, escuela.EscuelaID); resp.StatusCode != http.StatusNotFound {
		t.Errorf("segunda eliminación: status = %d, se esperaba 404", resp.StatusCode)
	}
}
