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
	maestroModel "cesi_backend/internals/features/maestros/model"
	notificacionModel "cesi_backend/internals/features/notificaciones/model"
	notificacionRoute "cesi_backend/internals/features/notificaciones/route"
	"cesi_backend/internals/testutil"
)

type fixturaNotificaciones struct {
	app     *fiber.App
	db      *gorm.DB
	token   string
	maestro maestroModel.MaestroModel
	alumno  alumnoModel.AlumnoModel
	tutorID uuid.UUID
}

func nuevaFixtura(t *testing.T) fixturaNotificaciones {
	t.Helper()

	db := testutil.NewTestDB(t)
	app := testutil.NewApp()
	notificacionRoute.NotificacionRoutes(app.Group("/api"), db)

	adminUsr, escuela := testutil.CrearAdminConEscuela(t, db, testutil.EmailUnico("admin"))
	salon := testutil.CrearSalon(t, db, escuela.EscuelaID, "Salón B")
	tutor, _ := testutil.CrearTutor(t, db, escuela.EscuelaID, testutil.EmailUnico("tutor"))

	maestro := maestroModel.MaestroModel{
		MaestroNombre:   "Maestro Uno",
		MaestroUsuario:  testutil.EmailUnico("maestro"),
		MaestroTelefono: "5544455566",
		CesiEscuelaID:   escuela.EscuelaID,
	}
	if err := db.Create(&maestro).Error; err != nil {
		t.Fatalf("crear maestro: %v", err)
	}

	alumno := alumnoModel.AlumnoModel{
		AlumnoNombre: "Alumno Avisado",
		CesiTutoreID: tutor.TutorID,
		CesiSaloneID: salon.SalonID,
	}
	if err := db.Create(&alumno).Error; err != nil {
		t.Fatalf("crear alumno: %v", err)
	}

	return fixturaNotificaciones{
		app:     app,
		db:      db,
		token:   testutil.TokenPara(t, adminUsr),
		maestro: maestro,
		alumno:  alumno,
		tutorID: tutor.TutorID,
	}
}

func (f fixturaNotificaciones) pedir(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("serializar cuerpo: %v", err)
		}
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+f.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := f.app.Test(req, 5000)
	if err != nil {
		t.Fatalf("petición %s %s: %v", method, path, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	return resp, raw
}

func TestCrearNotificacionSeDirigeAlTutor(t *testing.T) {
	f := nuevaFixtura(t)

	resp, raw := f.pedir(t, http.MethodPost,
		fmt.Sprintf("/api/notificaciones/alumno/%s/%s", f.maestro.MaestroID, f.alumno.AlumnoID),
		map[string]string{"notificacion_mensaje": "El alumno olvidó su mochila"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, se esperaba 201 (cuerpo: %s)", resp.StatusCode, raw)
	}

	var notificacion notificacionModel.NotificacionModel
	if err := f.db.First(&notificacion, "cesi_alumno_id = ?", f.alumno.AlumnoID).Error; err != nil {
		t.Fatalf("la notificación no se insertó: %v", err)
	}
	if notificacion.CesiTutoreID != f.tutorID {
		t.Error("la notificación debía dirigirse al tutor del alumno")
	}
	if notificacion.NotificacionLeida {
		t.Error("una notificación nueva debía quedar sin leer")
	}
}

func TestCrearNotificacionMaestroInexistente(t *testing.T) {
	f := nuevaFixtura(t)

	resp, _ := f.pedir(t, http.MethodPost,
		fmt.Sprintf("/api/notificaciones/alumno/%s/%s", uuid.New(), f.alumno.AlumnoID),
		map[string]string{"notificacion_mensaje": "aviso"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, se esperaba 404", resp.StatusCode)
	}
}

func TestMarcarNotificacionLeida(t *testing.T) {
	f := nuevaFixtura(t)

	notificacion := notificacionModel.NotificacionModel{
		NotificacionMensaje: "aviso previo",
		CesiTutoreID:        f.tutorID,
		CesiAlumnoID:        f.alumno.AlumnoID,
	}
	if err := f.db.Create(&notificacion).Error; err != nil {
		t.Fatalf("crear notificación: %v", err)
	}

	leida := true
	resp, raw := f.pedir(t, http.MethodPut,
		fmt.Sprintf("/api/notificaciones/alumno/%s/notificacion/%s", f.alumno.AlumnoID, notificacion.NotificacionID),
		map[string]interface{}{"notificacion_leida": leida})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, se esperaba 200 (cuerpo: %s)", resp.StatusCode, raw)
	}

	var actual notificacionModel.NotificacionModel
	if err := f.db.First(&actual, "notificacion_id = ?", notificacion.NotificacionID).Error; err != nil {
		t.Fatalf("recargar notificación: %v", err)
	}
	if !actual.NotificacionLeida {
		t.Error("la notificación debía quedar marcada como leída")
	}
	if actual.NotificacionMensaje != "aviso previo" {
		t.Error("el mensaje no debía cambiar al marcar como leída")
	}
}

func TestListarNotificacionesPorTutor(t *testing.T) {
	f := nuevaFixtura(t)

	for i := 0; i < 2; i++ {
		n := notificacionModel.NotificacionModel{
			NotificacionMensaje: fmt.Sprintf("aviso %d", i),
			CesiTutoreID:        f.tutorID,
			CesiAlumnoID:        f.alumno.AlumnoID,
		}
		if err := f.db.Create(&n).Error; err != nil {
			t.Fatalf("crear notificación: %v", err)
		}
	}

	resp, raw := f.pedir(t, http.MethodGet,
		fmt.Sprintf("/api/notificaciones/tutor/%s", f.tutorID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, se esperaba 200", resp.StatusCode)
	}

	var lista []notificacionModel.NotificacionModel
	if err := json.Unmarshal(raw, &lista); err != nil {
		t.Fatalf("decodificar lista: %v", err)
	}
	if len(lista) != 2 {
		t.Errorf("notificaciones del tutor = %d, se esperaban 2", len(lista))
	}
}
