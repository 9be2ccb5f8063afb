package repository

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// AnalyticsRepository define las consultas de lectura agregadas.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// TopUsersByQuantity devuelve los `limit` usuarios con mayor cantidad total
	// de productos comprados (SUM de order_lines.quantity agrupada por usuario),
	// en orden descendente. La suma solo se usa para ordenar; el resultado son
	// los usuarios reconstruidos con sus campos de presentación.
	TopUsersByQuantity(ctx context.Context, limit int) ([]*entity.User, error)
}
