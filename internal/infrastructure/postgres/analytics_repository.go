package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura agregadas sobre PostgreSQL (read-only).
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de consultas. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// TopUsersByQuantity devuelve los `limit` usuarios con mayor SUM(quantity),
// en orden descendente. La suma ordena pero no se expone: el resultado se
// reconstruye solo con las columnas del usuario.
func (r *AnalyticsRepo) TopUsersByQuantity(ctx context.Context, limit int) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.name, u.city
		FROM users u
		JOIN orders o ON o.user_id = u.id
		JOIN order_lines l ON l.order_id = o.id
		GROUP BY u.id, u.name, u.city
		ORDER BY SUM(l.quantity) DESC, u.id ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.City); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}
