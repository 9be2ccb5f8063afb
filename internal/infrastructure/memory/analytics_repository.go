package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consulta agregada sobre los repositorios en memoria.
// Reproduce la semántica del SUM + GROUP BY + ORDER BY + LIMIT del backend SQL.
type AnalyticsRepo struct {
	users  *UserRepo
	orders *OrderRepo
}

// NewAnalyticsRepository construye la consulta sobre los repos dados.
func NewAnalyticsRepository(users *UserRepo, orders *OrderRepo) *AnalyticsRepo {
	return &AnalyticsRepo{users: users, orders: orders}
}

// TopUsersByQuantity devuelve los `limit` usuarios con mayor cantidad total
// comprada, en orden descendente. Solo aparecen usuarios con pedidos (JOIN,
// no LEFT JOIN). Empates desempatados por id ascendente para un orden estable.
func (r *AnalyticsRepo) TopUsersByQuantity(ctx context.Context, limit int) ([]*entity.User, error) {
	r.orders.mu.RLock()
	totals := make(map[entity.UserID]int64)
	for _, order := range r.orders.orders {
		for _, line := range order.Lines {
			totals[order.UserID] += line.Quantity
		}
	}
	r.orders.mu.RUnlock()

	type ranked struct {
		id    entity.UserID
		total int64
	}
	ranking := make([]ranked, 0, len(totals))
	for id, total := range totals {
		ranking = append(ranking, ranked{id: id, total: total})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].total != ranking[j].total {
			return ranking[i].total > ranking[j].total
		}
		return ranking[i].id < ranking[j].id
	})
	if limit < len(ranking) {
		ranking = ranking[:limit]
	}

	users := make([]*entity.User, 0, len(ranking))
	for _, entry := range ranking {
		user, err := r.users.FindByID(ctx, entry.id)
		if err != nil {
			return nil, err
		}
		if user != nil {
			users = append(users, user)
		}
	}
	return users, nil
}
