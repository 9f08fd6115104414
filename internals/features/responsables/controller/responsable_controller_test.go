package controller_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "cesi_backend/internals/features/dashboard/route"
	responsableModel "cesi_backend/internals/features/responsables/model"
	responsableRoute "cesi_backend/internals/features/responsables/route"
	"cesi_backend/internals/testutil"
)

func nuevaAppResponsables(t *testing.T) (*fiber.App, *gorm.DB, string, responsableModel.ResponsableModel) {
	t.Helper()

	db := testutil.NewTestDB(t)
	app := testutil.NewApp()
	api := app.Group("/api")
	responsableRoute.ResponsableRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)

	adminUsr, escuela := testutil.CrearAdminConEscuela(t, db, testutil.EmailUnico("admin"))
	tutor, _ := testutil.CrearTutor(t, db, escuela.EscuelaID, testutil.EmailUnico("tutor"))

	responsable := responsableModel.ResponsableModel{
		ResponsableNombre:   "Abuela",
		ResponsableUsuario:  testutil.EmailUnico("abuela"),
		ResponsableTelefono: "5533344455",
		CesiTutoreID:        tutor.TutorID,
	}
	if err := db.Create(&responsable).Error; err != nil {
		t.Fatalf("crear responsable: %v", err)
	}
	return app, db, testutil.TokenPara(t, adminUsr), responsable
}

func TestActivarResponsable(t *testing.T) {
	app, db, token, responsable := nuevaAppResponsables(t)

	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/responsables/%s/activar", responsable.ResponsableID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("petición: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, se esperaba 200 (cuerpo: %s)", resp.StatusCode, raw)
	}

	var actual responsableModel.ResponsableModel
	if err := db.First(&actual, "responsable_id = ?", responsable.ResponsableID).Error; err != nil {
		t.Fatalf("recargar responsable: %v", err)
	}
	if !actual.ResponsableActivacion {
		t.Error("el responsable debía quedar activado")
	}
}

func TestDashboardExcluyeActivados(t *testing.T) {
	app, db, token, responsable := nuevaAppResponsables(t)

	listar := func() []responsableModel.ResponsableModel {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/responsables-inactivos", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, 5000)
		if err != nil {
			t.Fatalf("petición: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, se esperaba 200", resp.StatusCode)
		}
		var lista []responsableModel.ResponsableModel
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &lista); err != nil {
			t.Fatalf("decodificar lista: %v", err)
		}
		return lista
	}

	antes := listar()
	if len(antes) != 1 || antes[0].ResponsableID != responsable.ResponsableID {
		t.Fatalf("el panel debía listar al responsable inactivo, dio %d", len(antes))
	}

	db.Model(&responsable).Update("responsable_activacion", true)

	if despues := listar(); len(despues) != 0 {
		t.Errorf("el panel debía quedar vacío tras activar, dio %d", len(despues))
	}
}

func TestDashboardNoListaOtrasEscuelas(t *testing.T) {
	app, db, _, _ := nuevaAppResponsables(t)

	// otro administrador con su propia escuela, sin responsables inactivos
	otroUsr, _ := testutil.CrearAdminConEscuela(t, db, testutil.EmailUnico("otro-admin"))
	token := testutil.TokenPara(t, otroUsr)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/responsables-inactivos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("petición: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, se esperaba 200", resp.StatusCode)
	}

	var lista []responsableModel.ResponsableModel
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &lista); err != nil {
		t.Fatalf("decodificar lista: %v", err)
	}
	if len(lista) != 0 {
		t.Errorf("el panel de otro administrador debía estar vacío, dio %d", len(lista))
	}
}
