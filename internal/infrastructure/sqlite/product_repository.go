package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Save persiste un producto nuevo. Solo-inserción: un id existente es ErrDuplicate.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, price) VALUES (?, ?, ?)`,
		int64(product.ID), product.Name, product.Price,
	)
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
	err := r.db.QueryRowContext(ctx, `SELECT id FROM products WHERE id = ?`, int64(id)).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists product: %w", err)
	}
	return true, nil
}

// FindByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) FindByID(ctx context.Context, id entity.ProductID) (*entity.Product, error) {
	var p entity.Product
	err := r.db.QueryRowContext(ctx, `SELECT id, name, price FROM products WHERE id = ?`, int64(id)).
		Scan(&p.ID, &p.Name, &p.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
