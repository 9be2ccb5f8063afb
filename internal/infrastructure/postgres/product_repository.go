package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Save persiste un producto nuevo. Solo-inserción: un id existente es ErrDuplicate.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product) error {
	query := `INSERT INTO products (id, name, price) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, int64(product.ID), product.Name, product.Price)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Exists comprueba por clave primaria.
func (r *ProductRepo) Exists(ctx context.Context, id entity.ProductID) (bool, error) {
	var found int64
	err := r.q.QueryRow(ctx, `SELECT id FROM products WHERE id = $1`, int64(id)).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists product: %w", err)
	}
	return true, nil
}

// FindByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) FindByID(ctx context.Context, id entity.ProductID) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, `SELECT id, name, price FROM products WHERE id = $1`, int64(id)).
		Scan(&p.ID, &p.Name, &p.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
