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
	"github.com/google/uuid"
	"gorm.io/gorm"

	alumnoModel "cesi_backend/internals/features/alumnos/model"
	rastreoModel "cesi_backend/internals/features/rastreos/model"
	rastreoRoute "cesi_backend/internals/features/rastreos/route"
	recogidaModel "cesi_backend/internals/features/recogidas/model"
	responsableModel "cesi_backend/internals/features/responsables/model"
	"cesi_backend/internals/testutil"
)

func nuevaAppRastreos(t *testing.T) (*fiber.App, *gorm.DB, string, recogidaModel.RecogidaModel) {
	t.Helper()

	db := testutil.NewTestDB(t)
	app := testutil.NewApp()
	rastreoRoute.RastreoRoutes(app.Group("/api"), db)

	adminUsr, escuela := testutil.CrearAdminConEscuela(t, db, testutil.EmailUnico("admin"))
	salon := testutil.CrearSalon(t, db, escuela.EscuelaID, "Salón C")
	tutor, _ := testutil.CrearTutor(t, db, escuela.EscuelaID, testutil.EmailUnico("tutor"))

	alumno := alumnoModel.AlumnoModel{
		AlumnoNombre: "Alumno Rastreado",
		CesiTutoreID: tutor.TutorID,
		CesiSaloneID: salon.SalonID,
	}
	if err := db.Create(&alumno).Error; err != nil {
		t.Fatalf("crear alumno: %v", err)
	}
	responsable := responsableModel.ResponsableModel{
		ResponsableNombre:     "Responsable",
		ResponsableUsuario:    testutil.EmailUnico("resp"),
		ResponsableTelefono:   "5566677788",
		ResponsableActivacion: true,
		CesiTutoreID:          tutor.TutorID,
	}
	if err := db.Create(&responsable).Error; err != nil {
		t.Fatalf("crear responsable: %v", err)
	}
	recogida := recogidaModel.RecogidaModel{
		CesiResponsableID: responsable.ResponsableID,
		CesiAlumnoID:      alumno.AlumnoID,
	}
	if err := db.Create(&recogida).Error; err != nil {
		t.Fatalf("crear recogida: %v", err)
	}

	return app, db, testutil.TokenPara(t, adminUsr), recogida
}

func crearRastreo(t *testing.T, app *fiber.App, token string, recogidaID uuid.UUID, lat, lon float64) *http.Response {
	t.Helper()

	buf, _ := json.Marshal(map[string]float64{
		"rastreo_latitud":  lat,
		"rastreo_longitud": lon,
	})
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/rastreo/recogida/%s", recogidaID), bytes.NewReader(buf))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("petición: %v", err)
	}
	return resp
}

func TestCrearRastreo(t *testing.T) {
	app, db, token, recogida := nuevaAppRastreos(t)

	resp := crearRastreo(t, app, token, recogida.RecogidaID, 19.4326, -99.1332)
	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, se esperaba 201 (cuerpo: %s)", resp.StatusCode, raw)
	}

	var rastreo rastreoModel.RastreoModel
	if err := db.First(&rastreo, "cesi_recogida_id = ?", recogida.RecogidaID).Error; err != nil {
		t.Fatalf("el rastreo no se insertó: %v", err)
	}
	if rastreo.RastreoLatitud != 19.4326 || rastreo.RastreoLongitud != -99.1332 {
		t.Errorf("coordenadas = (%v, %v)", rastreo.RastreoLatitud, rastreo.RastreoLongitud)
	}
}

func TestCrearRastreoConRecogidaCompleta(t *testing.T) {
	app, db, token, recogida := nuevaAppRastreos(t)
	db.Model(&recogida).Update("recogida_estatus", recogidaModel.EstatusCompleta)

	// el alta no revisa el estatus: una recogida cerrada sigue aceptando muestras
	resp := crearRastreo(t, app, token, recogida.RecogidaID, 19.43, -99.13)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, se esperaba 201", resp.StatusCode)
	}
}

func TestCrearRastreoRecogidaInexistente(t *testing.T) {
	app, _, token, _ := nuevaAppRastreos(t)

	resp := crearRastreo(t, app, token, uuid.New(), 19.43, -99.13)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, se esperaba 404", resp.StatusCode)
	}
}

func TestCrearRastreoCoordenadasFueraDeRango(t *testing.T) {
	app, db, token, recogida := nuevaAppRastreos(t)

	resp := crearRastreo(t, app, token, recogida.RecogidaID, 95.0, -99.13)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, se esperaba 422", resp.StatusCode)
	}

	var count int64
	db.Model(&rastreoModel.RastreoModel{}).Count(&count)
	if count != 0 {
		t.Errorf("no debía insertarse rastreo fuera de rango, hay %d", count)
	}
}
