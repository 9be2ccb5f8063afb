package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura agregadas sobre SQLite (read-only).
type AnalyticsRepo struct {
	db *sql.DB
}

// NewAnalyticsRepository construye el adaptador de consultas.
func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// TopUsersByQuantity devuelve los `limit` usuarios con mayor SUM(quantity),
// en orden descendente. La suma ordena pero no se expone.
func (r *AnalyticsRepo) TopUsersByQuantity(ctx context.Context, limit int) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.name, u.city
		FROM users u
		JOIN orders o ON o.user_id = u.id
		JOIN order_lines l ON l.order_id = o.id
		GROUP BY u.id, u.name, u.city
		ORDER BY SUM(l.quantity) DESC, u.id ASC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
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
