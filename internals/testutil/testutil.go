// Package testutil arma una base en memoria y fixtures mínimos para las
// pruebas de controladores.
package testutil

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cesi_backend/internals/configs"
	database "cesi_backend/internals/databases"
	escuelaModel "cesi_backend/internals/features/escuelas/model"
	salonModel "cesi_backend/internals/features/salones/model"
	tutorModel "cesi_backend/internals/features/tutores/model"
	"cesi_backend/internals/features/users/auth/service"
	userModel "cesi_backend/internals/features/users/user/model"
	helper "cesi_backend/internals/helpers"
)

// NewTestDB abre una sqlite en memoria con el esquema completo migrado y
// fija el secreto JWT de prueba.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	configs.JWTSecret = "secreto-de-prueba"
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite en memoria: %v", err)
	}
	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrar esquema: %v", err)
	}
	return db
}

// NewApp construye una app fiber con el mismo manejador de errores que
// producción, para que {"error": ...} salga igual en las pruebas.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
}

// CrearUsuario inserta un usuario activo con contraseña "secreto123".
func CrearUsuario(t *testing.T, db *gorm.DB, nombre, email, role string) userModel.UserModel {
	t.Helper()

	usr := userModel.UserModel{
		UserName:   nombre,
		UserEmail:  email,
		UserRole:   role,
		UserActivo: true,
	}
	if err := usr.SetPassword("secreto123"); err != nil {
		t.Fatalf("hash de contraseña: %v", err)
	}
	if err := db.Create(&usr).Error; err != nil {
		t.Fatalf("crear usuario: %v", err)
	}
	return usr
}

// TokenPara firma un token para el usuario con el secreto de prueba.
func TokenPara(t *testing.T, usr userModel.UserModel) string {
	t.Helper()

	token, err := service.IssueToken(usr)
	if err != nil {
		t.Fatalf("emitir token: %v", err)
	}
	return token
}

// CrearAdminConEscuela inserta administrador + usuario admin + escuela y
// devuelve el usuario (para el token) y la escuela.
func CrearAdminConEscuela(t *testing.T, db *gorm.DB, email string) (userModel.UserModel, escuelaModel.EscuelaModel) {
	t.Helper()

	usr := CrearUsuario(t, db, "Admin "+email, email, "admin")
	admin := escuelaModel.AdministradorModel{
		AdministradorNombre:  usr.UserName,
		AdministradorUsuario: email,
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("crear administrador: %v", err)
	}
	escuela := escuelaModel.EscuelaModel{
		EscuelaNombre:       "Escuela de " + email,
		CesiAdministradorID: admin.AdministradorID,
	}
	if err := db.Create(&escuela).Error; err != nil {
		t.Fatalf("crear escuela: %v", err)
	}
	return usr, escuela
}

// CrearSalon inserta un salón en la escuela dada.
func CrearSalon(t *testing.T, db *gorm.DB, escuelaID uuid.UUID, nombre string) salonModel.SalonModel {
	t.Helper()

	salon := salonModel.SalonModel{
		SalonNombre:   nombre,
		SalonGrado:    "1A",
		CesiEscuelaID: escuelaID,
	}
	if err := db.Create(&salon).Error; err != nil {
		t.Fatalf("crear salón: %v", err)
	}
	return salon
}

// CrearTutor inserta un perfil de tutor con su usuario espejo.
func CrearTutor(t *testing.T, db *gorm.DB, escuelaID uuid.UUID, email string) (tutorModel.TutorModel, userModel.UserModel) {
	t.Helper()

	usr := CrearUsuario(t, db, "Tutor "+email, email, "tutor")
	tutor := tutorModel.TutorModel{
		TutorNombre:   usr.UserName,
		TutorUsuario:  email,
		TutorTelefono: "5512345678",
		CesiEscuelaID: escuelaID,
	}
	if err := db.Create(&tutor).Error; err != nil {
		t.Fatalf("crear tutor: %v", err)
	}
	return tutor, usr
}

// EmailUnico genera correos distintos por prueba.
func EmailUnico(prefijo string) string {
	return fmt.Sprintf("%s-%s@cesi.test", prefijo, uuid.New().String()[:8])
}
