// Package sqlite implementa los puertos de persistencia sobre SQLite embebido
// (driver puro Go, sin servidor). Es el backend del importador CLI y de los
// tests de repositorio.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// Open abre (o crea) la base en la ruta dada y la deja lista: claves foráneas
// activadas y una sola conexión, porque SQLite serializa las escrituras.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir base: %w", err)
	}
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("activar claves foráneas: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping base: %w", err)
	}
	return db, nil
}

// isUniqueViolation reconoce la violación de constraint único del driver.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
