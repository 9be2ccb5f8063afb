package repository

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Mismo contrato que UserRepository: inserción pura, sin upsert.
type ProductRepository interface {
	Save(ctx context.Context, product *entity.Product) error
	Exists(ctx context.Context, id entity.ProductID) (bool, error)
	FindByID(ctx context.Context, id entity.ProductID) (*entity.Product, error)
}
