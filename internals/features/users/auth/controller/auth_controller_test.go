package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	escuelaModel "cesi_backend/internals/features/escuelas/model"
	authRoute "cesi_backend/internals/features/users/auth/route"
	userModel "cesi_backend/internals/features/users/user/model"
	authMiddleware "cesi_backend/internals/middlewares/auth"
	"cesi_backend/internals/testutil"
)

func nuevaAppAuth(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	app := testutil.NewApp()
	authRoute.AuthRoutes(app.Group("/api"), db)

	// endpoint protegido de apoyo, para comprobar revocación de tokens
	app.Get("/api/perfil", authMiddleware.AuthMiddleware(db), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("serializar cuerpo: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("petición %s: %v", path, err)
	}

	decoded := map[string]interface{}{}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &decoded)
	return resp, decoded
}

func TestLoginCorrecto(t *testing.T) {
	app, db := nuevaAppAuth(t)
	email := testutil.EmailUnico("login")
	testutil.CrearUsuario(t, db, "Usuario Login", email, "tutor")

	resp, body := postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "secreto123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, se esperaba 200 (cuerpo: %v)", resp.StatusCode, body)
	}
	if body["token"] == nil || body["token"] == "" {
		t.Error("la respuesta debía incluir un token")
	}
	usr, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("la respuesta debía incluir el usuario, cuerpo: %v", body)
	}
	if _, expuesto := usr["user_password"]; expuesto {
		t.Error("el hash de contraseña no debe serializarse")
	}
}

func TestLoginContrasenaIncorrecta(t *testing.T) {
	app, db := nuevaAppAuth(t)
	email := testutil.EmailUnico("login-mal")
	testutil.CrearUsuario(t, db, "Usuario", email, "tutor")

	resp, body := postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "otracontrasena",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, se esperaba 401", resp.StatusCode)
	}
	if body["error"] != "Credenciales incorrectas" {
		t.Errorf("error = %v, se esperaba Credenciales incorrectas", body["error"])
	}
}

func TestLoginCuentaDesactivada(t *testing.T) {
	app, db := nuevaAppAuth(t)
	email := testutil.EmailUnico("inactivo")
	usr := testutil.CrearUsuario(t, db, "Inactivo", email, "tutor")
	db.Model(&usr).Update("user_activo", false)

	resp, _ := postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "secreto123",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, se esperaba 403", resp.StatusCode)
	}
}

func TestLogoutRevocaElToken(t *testing.T) {
	app, db := nuevaAppAuth(t)
	email := testutil.EmailUnico("logout")
	usr := testutil.CrearUsuario(t, db, "Usuario Logout", email, "tutor")
	token := testutil.TokenPara(t, usr)

	hacer := func(method, path string) *http.Response {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, 10000)
		if err != nil {
			t.Fatalf("petición %s: %v", path, err)
		}
		return resp
	}

	if resp := hacer(http.MethodGet, "/api/perfil"); resp.StatusCode != http.StatusOK {
		t.Fatalf("antes del logout: status = %d, se esperaba 200", resp.StatusCode)
	}
	if resp := hacer(http.MethodPost, "/api/auth/logout"); resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: status = %d, se esperaba 200", resp.StatusCode)
	}
	if resp := hacer(http.MethodGet, "/api/perfil"); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("después del logout: status = %d, se esperaba 401", resp.StatusCode)
	}
	// repetir logout con el mismo token revocado no es error del servicio
	if resp := hacer(http.MethodPost, "/api/auth/logout"); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("logout repetido: status = %d, se esperaba 401 por token revocado", resp.StatusCode)
	}
}

func TestRegistroAdminCreaPerfil(t *testing.T) {
	app, db := nuevaAppAuth(t)
	email := testutil.EmailUnico("registro-admin")

	resp, body := postJSON(t, app, "/api/registro", map[string]string{
		"nombre":   "Admin Nuevo",
		"email":    email,
		"password": "secreto123",
		"telefono": "5512312312",
		"role":     "admin",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, se esperaba 201 (cuerpo: %v)", resp.StatusCode, body)
	}

	var admin escuelaModel.AdministradorModel
	if err := db.First(&admin, "administrador_usuario = ?", email).Error; err != nil {
		t.Fatalf("el perfil de administrador no se creó: %v", err)
	}
}

func TestRegistroCorreoDuplicado(t *testing.T) {
	app, db := nuevaAppAuth(t)
	email := testutil.EmailUnico("duplicado")
	testutil.CrearUsuario(t, db, "Existente", email, "tutor")

	resp, body := postJSON(t, app, "/api/registro", map[string]string{
		"nombre":   "Otro",
		"email":    email,
		"password": "secreto123",
		"role":     "tutor",
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, se esperaba 422 (cuerpo: %v)", resp.StatusCode, body)
	}

	var count int64
	db.Model(&userModel.UserModel{}).Where("user_email = ?", email).Count(&count)
	if count != 1 {
		t.Errorf("usuarios con el correo = %d, se esperaba 1", count)
	}
}
