package service

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	alumnoModel "cesi_backend/internals/features/alumnos/model"
	recogidaModel "cesi_backend/internals/features/recogidas/model"
	responsableModel "cesi_backend/internals/features/responsables/model"
	tutorModel "cesi_backend/internals/features/tutores/model"
	"cesi_backend/internals/helpers/storage"
)

// GenerarReportePDF proyecta todas las recogidas de los alumnos del tutor a
// un PDF bajo reportes/ y registra la fila de reporte. La generación no
// modifica las recogidas; si la fila no se puede insertar, el PDF se borra.
func GenerarReportePDF(db *gorm.DB, tutor *tutorModel.TutorModel) (*recogidaModel.ReporteModel, error) {
	var alumnos []alumnoModel.AlumnoModel
	if err := db.Where("cesi_tutore_id = ?", tutor.TutorID).Find(&alumnos).Error; err != nil {
		return nil, err
	}

	nombresAlumno := make(map[string]string, len(alumnos))
	alumnoIDs := make([]interface{}, 0, len(alumnos))
	for _, a := range alumnos {
		nombresAlumno[a.AlumnoID.String()] = a.AlumnoNombre
		alumnoIDs = append(alumnoIDs, a.AlumnoID)
	}

	recogidas := []recogidaModel.RecogidaModel{}
	if len(alumnoIDs) > 0 {
		if err := db.Where("cesi_alumno_id IN ?", alumnoIDs).
			Order("created_at").Find(&recogidas).Error; err != nil {
			return nil, err
		}
	}

	nombresResponsable := map[string]string{}
	for _, r := range recogidas {
		key := r.CesiResponsableID.String()
		if _, ok := nombresResponsable[key]; ok {
			continue
		}
		var resp responsableModel.ResponsableModel
		if err := db.First(&resp, "responsable_id = ?", r.CesiResponsableID).Error; err == nil {
			nombresResponsable[key] = resp.ResponsableNombre
		}
	}

	rel, abs, err := storage.NuevaRutaReporte()
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// las fuentes base son cp1252; el traductor mapea acentos y eñes
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Reporte de recogidas")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Tutor: %s", tutor.TutorNombre)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generado: %s", time.Now().Format("02/01/2006 15:04")))
	pdf.Ln(10)

	// cabecera de la tabla
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(28, 7, "Fecha", "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 7, "Alumno", "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 7, "Responsable", "1", 0, "C", false, 0, "")
	pdf.CellFormat(26, 7, "Estatus", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 7, "Observaciones", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range recogidas {
		fecha := time.Time(r.RecogidaFecha).Format("02/01/2006")
		obs := recortar(r.RecogidaObservaciones, 30)
		pdf.CellFormat(28, 7, fecha, "1", 0, "C", false, 0, "")
		pdf.CellFormat(48, 7, tr(nombresAlumno[r.CesiAlumnoID.String()]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(48, 7, tr(nombresResponsable[r.CesiResponsableID.String()]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(26, 7, r.RecogidaEstatus, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, tr(obs), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	if len(recogidas) == 0 {
		pdf.CellFormat(190, 7, "Sin recogidas registradas", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(abs); err != nil {
		return nil, err
	}

	reporte := recogidaModel.ReporteModel{
		ReportePdf:   rel,
		CesiTutoreID: tutor.TutorID,
	}
	if err := db.Create(&reporte).Error; err != nil {
		_ = storage.Eliminar(rel)
		return nil, err
	}
	return &reporte, nil
}

// recortar acorta el texto a max caracteres sin partir runas multibyte.
func recortar(s string, max int) string {
	runas := []rune(s)
	if len(runas) <= max {
		return s
	}
	return string(runas[:max-3]) + "..."
}
