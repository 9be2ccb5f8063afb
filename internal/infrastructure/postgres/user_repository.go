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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Save persiste un usuario nuevo. Solo-inserción: un id existente es ErrDuplicate.
func (r *UserRepo) Save(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (id, name, city) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, int64(user.ID), user.Name, user.City)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Exists comprueba por clave primaria.
func (r *UserRepo) Exists(ctx context.Context, id entity.UserID) (bool, error) {
	var found int64
	err := r.q.QueryRow(ctx, `SELECT id FROM users WHERE id = $1`, int64(id)).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists user: %w", err)
	}
	return true, nil
}

// FindByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, `SELECT id, name, city FROM users WHERE id = $1`, int64(id)).
		Scan(&u.ID, &u.Name, &u.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
