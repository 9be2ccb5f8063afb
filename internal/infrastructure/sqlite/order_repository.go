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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre SQLite.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Save persiste un pedido con sus líneas, en una transacción.
func (r *OrderRepo) Save(ctx context.Context, order *entity.Order) error {
	return r.SaveAll(ctx, []*entity.Order{order})
}

// SaveAll persiste el lote como una sola unidad: una fila por pedido y una fila
// por pareja (pedido, línea), todo dentro de una transacción.
func (r *OrderRepo) SaveAll(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, order := range orders {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO orders (id, user_id, created) VALUES (?, ?, ?)`,
			int64(order.ID), int64(order.UserID), order.Created,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert order: %w", err)
		}
		for _, line := range order.Lines {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO order_lines (order_id, product_id, quantity) VALUES (?, ?, ?)`,
				int64(order.ID), int64(line.ProductID), line.Quantity,
			)
			if err != nil {
				return fmt.Errorf("insert order line: %w", err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Exists comprueba por clave primaria.
func (r *OrderRepo) Exists(ctx context.Context, id entity.OrderID) (bool, error) {
	var found int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM orders WHERE id = ?`, int64(id)).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists order: %w", err)
	}
	return true, nil
}

// FindByID reconstruye un pedido con sus líneas; nil si no existe.
func (r *OrderRepo) FindByID(ctx context.Context, id entity.OrderID) (*entity.Order, error) {
	found, err := r.findJoined(ctx,
		`SELECT o.id, o.created, o.user_id, l.product_id, l.quantity
		 FROM orders o JOIN order_lines l ON o.id = l.order_id
		 WHERE o.id = ?
		 ORDER BY o.id`, int64(id))
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

// FindBetween devuelve los pedidos con created en [since, till], ambas cotas
// inclusive según el operador BETWEEN de la consulta de referencia.
func (r *OrderRepo) FindBetween(ctx context.Context, since, till int64) ([]*entity.Order, error) {
	return r.findJoined(ctx,
		`SELECT o.id, o.created, o.user_id, l.product_id, l.quantity
		 FROM orders o JOIN order_lines l ON o.id = l.order_id
		 WHERE o.created BETWEEN ? AND ?
		 ORDER BY o.id`, since, till)
}

// findJoined reagrupa las filas planas del join en agregados. El plegado agrupa
// filas adyacentes con el mismo id de pedido; correcto por el ORDER BY.
func (r *OrderRepo) findJoined(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	var current *entity.Order
	for rows.Next() {
		var orderID, created, userID, productID, quantity int64
		if err := rows.Scan(&orderID, &created, &userID, &productID, &quantity); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		if current == nil || int64(current.ID) != orderID {
			current = &entity.Order{
				ID:      entity.OrderID(orderID),
				UserID:  entity.UserID(userID),
				Created: created,
			}
			orders = append(orders, current)
		}
		current.Lines = append(current.Lines, entity.OrderLine{
			ProductID: entity.ProductID(productID),
			Quantity:  quantity,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}
