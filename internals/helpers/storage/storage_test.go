package storage_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"cesi_backend/internals/configs"
	"cesi_backend/internals/helpers/storage"
)

// fotoSubida empaqueta bytes como archivo multipart y devuelve el FileHeader
// tal como lo entrega fiber a los controladores.
func fotoSubida(t *testing.T, contenido []byte) *multipart.FileHeader {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("foto", "foto.png")
	if err != nil {
		t.Fatalf("crear parte: %v", err)
	}
	if _, err := part.Write(contenido); err != nil {
		t.Fatalf("escribir contenido: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cerrar multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parsear multipart: %v", err)
	}
	_, fh, err := req.FormFile("foto")
	if err != nil {
		t.Fatalf("obtener FileHeader: %v", err)
	}
	return fh
}

func pngValido(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("codificar png: %v", err)
	}
	return buf.Bytes()
}

func TestGuardarFotoPersisteWebp(t *testing.T) {
	configs.StorageDir = t.TempDir()

	rel, err := storage.GuardarFoto("tutores", fotoSubida(t, pngValido(t)))
	if err != nil {
		t.Fatalf("guardar foto: %v", err)
	}
	if filepath.Ext(rel) != ".webp" {
		t.Errorf("extensión = %q, se esperaba .webp", filepath.Ext(rel))
	}
	if _, err := os.Stat(storage.RutaAbsoluta(rel)); err != nil {
		t.Errorf("el archivo no quedó en disco: %v", err)
	}
}

func TestGuardarFotoDemasiadoGrande(t *testing.T) {
	configs.StorageDir = t.TempDir()

	grande := make([]byte, storage.MaxFotoBytes+1)
	_, err := storage.GuardarFoto("tutores", fotoSubida(t, grande))
	if err != storage.ErrFotoDemasiadoGrande {
		t.Fatalf("err = %v, se esperaba ErrFotoDemasiadoGrande", err)
	}
}

func TestGuardarFotoNoImagen(t *testing.T) {
	configs.StorageDir = t.TempDir()

	_, err := storage.GuardarFoto("tutores", fotoSubida(t, []byte("esto no es una imagen")))
	if err != storage.ErrFormatoNoValido {
		t.Fatalf("err = %v, se esperaba ErrFormatoNoValido", err)
	}
}

func TestEliminarEsIdempotente(t *testing.T) {
	configs.StorageDir = t.TempDir()

	rel, err := storage.GuardarFoto("tutores", fotoSubida(t, pngValido(t)))
	if err != nil {
		t.Fatalf("guardar foto: %v", err)
	}
	if err := storage.Eliminar(rel); err != nil {
		t.Fatalf("primer Eliminar: %v", err)
	}
	if err := storage.Eliminar(rel); err != nil {
		t.Errorf("segundo Eliminar debía ser silencioso: %v", err)
	}
	if err := storage.Eliminar(""); err != nil {
		t.Errorf("Eliminar con ruta vacía debía ser silencioso: %v", err)
	}
}
