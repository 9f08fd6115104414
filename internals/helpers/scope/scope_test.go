package scope_test

import (
	"testing"

	"cesi_backend/internals/helpers/scope"
	"cesi_backend/internals/testutil"
)

func TestEscuelasDeAdminSoloLasPropias(t *testing.T) {
	db := testutil.NewTestDB(t)

	emailA := testutil.EmailUnico("admin-a")
	emailB := testutil.EmailUnico("admin-b")
	_, escuelaA := testutil.CrearAdminConEscuela(t, db, emailA)
	_, escuelaB := testutil.CrearAdminConEscuela(t, db, emailB)

	ids, err := scope.EscuelasDeAdmin(db, emailA)
	if err != nil {
		t.Fatalf("resolver alcance: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("alcance = %d escuelas, se esperaba 1", len(ids))
	}
	if !scope.Contiene(ids, escuelaA.EscuelaID) {
		t.Error("el alcance debía contener la escuela propia")
	}
	if scope.Contiene(ids, escuelaB.EscuelaID) {
		t.Error("el alcance no debía contener la escuela de otro administrador")
	}
}

func TestEscuelasDeAdminCorreoDesconocido(t *testing.T) {
	db := testutil.NewTestDB(t)

	ids, err := scope.EscuelasDeAdmin(db, "nadie@cesi.test")
	if err != nil {
		t.Fatalf("resolver alcance: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("un correo sin administrador debía resolver a conjunto vacío, dio %d", len(ids))
	}
}
