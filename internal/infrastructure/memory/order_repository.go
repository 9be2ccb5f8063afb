package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo repositorio de pedidos en memoria.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[entity.OrderID]entity.Order
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{orders: make(map[entity.OrderID]entity.Order)}
}

// Save inserta un pedido nuevo; un id repetido es violación de integridad.
func (r *OrderRepo) Save(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(order)
}

// SaveAll inserta el lote completo o nada: se verifica la integridad de todos
// los ids antes de escribir, igual que la transacción única del backend SQL.
func (r *OrderRepo) SaveAll(_ context.Context, orders []*entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range orders {
		if _, ok := r.orders[order.ID]; ok {
			return domain.ErrDuplicate
		}
	}
	for _, order := range orders {
		if err := r.insert(order); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepo) insert(order *entity.Order) error {
	if _, ok := r.orders[order.ID]; ok {
		return domain.ErrDuplicate
	}
	stored := *order
	stored.Lines = append([]entity.OrderLine(nil), order.Lines...)
	r.orders[order.ID] = stored
	return nil
}

// Exists consulta por clave primaria.
func (r *OrderRepo) Exists(_ context.Context, id entity.OrderID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.orders[id]
	return ok, nil
}

// FindByID devuelve el pedido o nil si no existe.
func (r *OrderRepo) FindByID(_ context.Context, id entity.OrderID) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	found := order
	found.Lines = append([]entity.OrderLine(nil), order.Lines...)
	return &found, nil
}

// FindBetween devuelve los pedidos con created en [since, till], ambas cotas
// inclusive, ordenados por id como el ORDER BY del backend SQL.
func (r *OrderRepo) FindBetween(_ context.Context, since, till int64) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []*entity.Order
	for _, order := range r.orders {
		if order.Created >= since && order.Created <= till {
			match := order
			match.Lines = append([]entity.OrderLine(nil), order.Lines...)
			found = append(found, &match)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	return found, nil
}
