package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae la superficie común de pgxpool.Pool y pgx.Tx, de modo que un
// mismo repositorio funcione atado al pool o dentro de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB añade a Querier la capacidad de abrir transacciones. La implementan tanto
// pgxpool.Pool como pgx.Tx (anidadas vía savepoints).
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}
