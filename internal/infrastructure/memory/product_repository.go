package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[entity.ProductID]entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{products: make(map[entity.ProductID]entity.Product)}
}

// Save inserta un producto nuevo; un id repetido es violación de integridad.
func (r *ProductRepo) Save(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.products[product.ID] = *product
	return nil
}

// Exists consulta por clave primaria.
func (r *ProductRepo) Exists(_ context.Context, id entity.ProductID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.products[id]
	return ok, nil
}

// FindByID devuelve el producto o nil si no existe.
func (r *ProductRepo) FindByID(_ context.Context, id entity.ProductID) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}
