package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"cesi_backend/internals/configs"
)

// CreateIfNotExists crea la base de datos de la aplicación cuando no existe.
// Se conecta a la base "postgres" con el driver lib/pq porque GORM necesita
// que la base destino ya exista.
func CreateIfNotExists() error {
	name := os.Getenv("DB_NAME")
	if name == "" {
		return nil
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/postgres?sslmode=%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		configs.GetEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("abriendo conexión admin: %w", err)
	}
	defer db.Close()

	var exists bool
	row := db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name)
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("verificando base de datos: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", name)); err != nil {
		return fmt.Errorf("creando base de datos: %w", err)
	}
	log.Printf("[INFO] Base de datos %s creada.", name)
	return nil
}
