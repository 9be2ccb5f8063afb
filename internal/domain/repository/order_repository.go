package repository

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) error
	// SaveAll persiste el lote en una sola escritura: una fila por pedido y una
	// fila por pareja (pedido, línea), dentro de una única transacción.
	SaveAll(ctx context.Context, orders []*entity.Order) error
	Exists(ctx context.Context, id entity.OrderID) (bool, error)
	FindByID(ctx context.Context, id entity.OrderID) (*entity.Order, error)
	// FindBetween devuelve los pedidos con created dentro de [since, till]
	// (ambas cotas inclusive), reconstruidos con sus líneas y ordenados por id.
	FindBetween(ctx context.Context, since, till int64) ([]*entity.Order, error)
}
