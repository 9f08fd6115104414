package service

import (
	"os"
	"testing"
	"time"

	"gorm.io/datatypes"

	"cesi_backend/internals/configs"
	alumnoModel "cesi_backend/internals/features/alumnos/model"
	recogidaModel "cesi_backend/internals/features/recogidas/model"
	responsableModel "cesi_backend/internals/features/responsables/model"
	"cesi_backend/internals/helpers/storage"
	"cesi_backend/internals/testutil"
)

func TestRecortarRespetaRunas(t *testing.T) {
	// texto con acentos: 32 caracteres, más de 32 bytes
	texto := "Recogió a la niña en la entrada…"
	corto := recortar(texto, 30)

	if corto != string([]rune(texto)[:27])+"..." {
		t.Errorf("recorte inesperado: %q", corto)
	}
	for i, r := range corto {
		if r == '�' {
			t.Fatalf("runa partida en la posición %d: %q", i, corto)
		}
	}
	if recortar("breve", 30) != "breve" {
		t.Error("un texto corto no debía recortarse")
	}
}

func TestGenerarReportePDFConAcentos(t *testing.T) {
	configs.StorageDir = t.TempDir()
	db := testutil.NewTestDB(t)

	_, escuela := testutil.CrearAdminConEscuela(t, db, testutil.EmailUnico("admin"))
	salon := testutil.CrearSalon(t, db, escuela.EscuelaID, "2-B")
	tutor, _ := testutil.CrearTutor(t, db, escuela.EscuelaID, testutil.EmailUnico("tutor"))

	alumno := alumnoModel.AlumnoModel{
		AlumnoNombre: "Sofía Muñoz",
		CesiTutoreID: tutor.TutorID,
		CesiSaloneID: salon.SalonID,
	}
	if err := db.Create(&alumno).Error; err != nil {
		t.Fatalf("crear alumno: %v", err)
	}

	responsable := responsableModel.ResponsableModel{
		ResponsableNombre:   "Ramón Gutiérrez",
		ResponsableUsuario:  testutil.EmailUnico("ramon"),
		ResponsableTelefono: "5599887766",
		CesiTutoreID:        tutor.TutorID,
	}
	if err := db.Create(&responsable).Error; err != nil {
		t.Fatalf("crear responsable: %v", err)
	}

	recogida := recogidaModel.RecogidaModel{
		RecogidaFecha:         datatypes.Date(time.Now()),
		RecogidaEstatus:       recogidaModel.EstatusCompleta,
		RecogidaObservaciones: "Llegó acompañado por su tía María, quien firmó el registro",
		CesiResponsableID:     responsable.ResponsableID,
		CesiAlumnoID:          alumno.AlumnoID,
	}
	if err := db.Create(&recogida).Error; err != nil {
		t.Fatalf("crear recogida: %v", err)
	}

	reporte, err := GenerarReportePDF(db, &tutor)
	if err != nil {
		t.Fatalf("generar reporte: %v", err)
	}
	if reporte.CesiTutoreID != tutor.TutorID {
		t.Errorf("el reporte debía quedar ligado al tutor, dio %s", reporte.CesiTutoreID)
	}

	info, err := os.Stat(storage.RutaAbsoluta(reporte.ReportePdf))
	if err != nil {
		t.Fatalf("el PDF debía existir en disco: %v", err)
	}
	if info.Size() == 0 {
		t.Error("el PDF no debía estar vacío")
	}

	var count int64
	db.Model(&recogidaModel.ReporteModel{}).Count(&count)
	if count != 1 {
		t.Errorf("debía haber 1 fila de reporte, dio %d", count)
	}
}
