// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Sirve como doble de pruebas del servicio y como backend efímero
// intercambiable por inyección de dependencias.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct {
	mu    sync.RWMutex
	users map[entity.UserID]entity.User
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[entity.UserID]entity.User)}
}

// Save inserta un usuario nuevo. Mismo contrato que el backend SQL: un id
// repetido es violación de integridad, no upsert.
func (r *UserRepo) Save(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; ok {
		return domain.ErrDuplicate
	}
	r.users[user.ID] = *user
	return nil
}

// Exists consulta por clave primaria.
func (r *UserRepo) Exists(_ context.Context, id entity.UserID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[id]
	return ok, nil
}

// FindByID devuelve el usuario o nil si no existe.
func (r *UserRepo) FindByID(_ context.Context, id entity.UserID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
