package postgres

import (
	"context"
	"fmt"
)

// DDL del esquema relacional. El núcleo del servicio asume que el esquema ya
// existe; estos helpers los invocan los front ends antes de arrancar.
const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id   BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	city TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id    BIGINT PRIMARY KEY,
	name  TEXT NOT NULL,
	price BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id      BIGINT PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users (id),
	created BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS order_lines (
	order_id   BIGINT NOT NULL REFERENCES orders (id),
	product_id BIGINT NOT NULL REFERENCES products (id),
	quantity   BIGINT NOT NULL,
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
func CreateSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// DropSchema elimina las tablas en orden de dependencias.
func DropSchema(ctx context.Context, q Querier) error {
	for _, stmt := range dropStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("borrar esquema: %w", err)
		}
	}
	return nil
}
