package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alumnoModel "cesi_backend/internals/features/alumnos/model"
	alumnoRoute "cesi_backend/internals/features/alumnos/route"
	"cesi_backend/internals/testutil"
)

type escuelaConAlumno struct {
	token  string
	tutor  string
	salon  string
	alumno alumnoModel.AlumnoModel
}

// nuevaAppAlumnos prepara dos administradores con escuelas separadas,
// cada una con su tutor, salón y un alumno inscrito.
func nuevaAppAlumnos(t *testing.T) (*fiber.App, *gorm.DB, escuelaConAlumno, escuelaConAlumno) {
	t.Helper()

	db := testutil.NewTestDB(t)
	app := testutil.NewApp()
	alumnoRoute.AlumnoRoutes(app.Group("/api"), db)

	crear := func(prefijo string) escuelaConAlumno {
		adminUsr, escuela := testutil.CrearAdminConEscuela(t, db, testutil.EmailUnico(prefijo))
		salon := testutil.CrearSalon(t, db, escuela.EscuelaID, "1-A")
		tutor, _ := testutil.CrearTutor(t, db, escuela.EscuelaID, testutil.EmailUnico(prefijo+"-tutor"))

		alumno := alumnoModel.AlumnoModel{
			AlumnoNombre: "Alumno de " + prefijo,
			CesiTutoreID: tutor.TutorID,
			CesiSaloneID: salon.SalonID,
		}
		if err := db.Create(&alumno).Error; err != nil {
			t.Fatalf("crear alumno: %v", err)
		}
		return escuelaConAlumno{
			token:  testutil.TokenPara(t, adminUsr),
			tutor:  tutor.TutorID.String(),
			salon:  salon.SalonID.String(),
			alumno: alumno,
		}
	}
	return app, db, crear("norte"), crear("sur")
}

func pedirAlumnos(t *testing.T, app *fiber.App, method, path, token string, body []byte) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("petición: %v", err)
	}
	return resp
}

func TestIndexAlumnosSoloDeSusEscuelas(t *testing.T) {
	app, _, norte, sur := nuevaAppAlumnos(t)

	resp := pedirAlumnos(t, app, http.MethodGet, "/api/alumnos", norte.token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, se esperaba 200", resp.StatusCode)
	}

	var lista []alumnoModel.AlumnoModel
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &lista); err != nil {
		t.Fatalf("decodificar lista: %v", err)
	}
	if len(lista) != 1 {
		t.Fatalf("el listado debía tener 1 alumno, dio %d", len(lista))
	}
	if lista[0].AlumnoID != norte.alumno.AlumnoID {
		t.Errorf("se listó un alumno ajeno: %s", lista[0].AlumnoID)
	}
	if lista[0].AlumnoID == sur.alumno.AlumnoID {
		t.Error("el alumno de otra escuela no debía aparecer")
	}
}

func TestShowAlumnoDeOtraEscuelaDa404(t *testing.T) {
	app, _, norte, sur := nuevaAppAlumnos(t)

	resp := pedirAlumnos(t, app, http.MethodGet,
		fmt.Sprintf("/api/alumnos/%s", sur.alumno.AlumnoID), norte.token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, se esperaba 404", resp.StatusCode)
	}
}

func TestUpdateAlumnoDeOtraEscuelaDa404(t *testing.T) {
	app, db, norte, sur := nuevaAppAlumnos(t)

	body, _ := json.Marshal(fiber.Map{
		"alumno_nombre":  "Renombrado",
		"cesi_tutore_id": norte.tutor,
		"cesi_salone_id": norte.salon,
	})
	resp := pedirAlumnos(t, app, http.MethodPut,
		fmt.Sprintf("/api/alumnos/%s", sur.alumno.AlumnoID), norte.token, body)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, se esperaba 404", resp.StatusCode)
	}

	var actual alumnoModel.AlumnoModel
	if err := db.First(&actual, "alumno_id = ?", sur.alumno.AlumnoID).Error; err != nil {
		t.Fatalf("recargar alumno: %v", err)
	}
	if actual.AlumnoNombre != sur.alumno.AlumnoNombre {
		t.Errorf("el alumno ajeno fue modificado: %q", actual.AlumnoNombre)
	}
}

func TestDestroyAlumnoDeOtraEscuelaDa404(t *testing.T) {
	app, db, norte, sur := nuevaAppAlumnos(t)

	resp := pedirAlumnos(t, app, http.MethodDelete,
		fmt.Sprintf("/api/alumnos/%s", sur.alumno.AlumnoID), norte.token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, se esperaba 404", resp.StatusCode)
	}

	var count int64
	db.Model(&alumnoModel.AlumnoModel{}).
		Where("alumno_id = ?", sur.alumno.AlumnoID).Count(&count)
	if count != 1 {
		t.Error("el alumno ajeno no debía ser eliminado")
	}
}

func TestStoreAlumnoConTutorDeOtraEscuelaDa422(t *testing.T) {
	app, db, norte, sur := nuevaAppAlumnos(t)

	body, _ := json.Marshal(fiber.Map{
		"alumno_nombre":  "Intruso",
		"cesi_tutore_id": sur.tutor,
		"cesi_salone_id": norte.salon,
	})
	resp := pedirAlumnos(t, app, http.MethodPost, "/api/alumnos", norte.token, body)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, se esperaba 422", resp.StatusCode)
	}

	var count int64
	db.Model(&alumnoModel.AlumnoModel{}).
		Where("alumno_nombre = ?", "Intruso").Count(&count)
	if count != 0 {
		t.Error("no debía crearse el alumno con tutor ajeno")
	}
}
