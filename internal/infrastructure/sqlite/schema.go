package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// DDL del esquema; espejo del esquema PostgreSQL con tipos SQLite.
const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	city TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id    INTEGER PRIMARY KEY,
	name  TEXT NOT NULL,
	price INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id      INTEGER PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users (id),
	created INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS order_lines (
	order_id   INTEGER NOT NULL REFERENCES orders (id),
	product_id INTEGER NOT NULL REFERENCES products (id),
	quantity   INTEGER NOT NULL,
	PRIMARY KEY (order_id, product_id)
);

CREATE INDEX IF NOT EXISTS idx_orders_created ON orders (created);
`

// Orden de borrado: primero las tablas con claves foráneas.
var dropStatements = []string{
	`DROP TABLE IF EXISTS order_lines`,
	`DROP TABLE IF EXISTS products`,
	`DROP TABLE IF EXISTS orders`,
	`DROP TABLE IF EXISTS users`,
}

// CreateSchema crea las tablas si no existen.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// DropSchema elimina las tablas en orden de dependencias.
func DropSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("borrar esquema: %w", err)
		}
	}
	return nil
}
