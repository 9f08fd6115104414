package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"cesi_backend/internals/configs"
)

// Almacenamiento local de archivos: fotos bajo los espacios tutores/,
// maestros/ y responsables/, reportes PDF bajo reportes/.

const MaxFotoBytes = 2 * 1024 * 1024 // 2MB

var (
	ErrFotoDemasiadoGrande = errors.New("La imagen no debe exceder los 2 MB.")
	ErrFormatoNoValido     = errors.New("El archivo debe ser una imagen jpeg, png o gif.")
)

func baseDir() string {
	if configs.StorageDir != "" {
		return configs.StorageDir
	}
	return "storage"
}

func RutaAbsoluta(rel string) string {
	return filepath.Join(baseDir(), rel)
}

// GuardarFoto valida y persiste la foto subida: límite de 2MB, decodificación
// como imagen, reescalado a máx 512px y re-codificación webp. Devuelve la ruta
// relativa almacenada. Si el registro de base de datos que la referencia falla
// después, el llamador debe invocar Eliminar con esa ruta (borrado
// compensatorio).
func GuardarFoto(namespace string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFotoBytes {
		return "", ErrFotoDemasiadoGrande
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("abriendo archivo subido: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrFormatoNoValido
	}
	img = imaging.Fit(img, 512, 512, imaging.Lanczos)

	rel := filepath.Join(namespace, uuid.New().String()+".webp")
	abs := RutaAbsoluta(rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("creando directorio de fotos: %w", err)
	}

	out, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("creando archivo de foto: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 85}); err != nil {
		_ = os.Remove(abs)
		return "", fmt.Errorf("codificando webp: %w", err)
	}
	return rel, nil
}

// NuevaRutaReporte reserva una ruta para un PDF de reporte.
func NuevaRutaReporte() (rel string, abs string, err error) {
	rel = filepath.Join("reportes", uuid.New().String()+".pdf")
	abs = RutaAbsoluta(rel)
	if err = os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", "", fmt.Errorf("creando directorio de reportes: %w", err)
	}
	return rel, abs, nil
}

// Eliminar borra un archivo almacenado. Es idempotente: un archivo ya
// inexistente no es error.
func Eliminar(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(RutaAbsoluta(rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
