package usecase

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/jhoicas/Pedidos-api/internal/infrastructure/jsonl"
	"github.com/jhoicas/Pedidos-api/pkg/logger"
)

// OrderService es la fachada de aplicación: ingesta por lotes y las dos
// consultas de lectura. Las dependencias se inyectan por constructor; el logger
// es opcional (nil = operación silenciosa).
//
// La ingesta NO envuelve todo el lote en una transacción: usuarios y productos
// se confirman registro a registro (un registro posterior puede referenciar un
// usuario introducido antes en el mismo lote) y solo la escritura final de
// pedidos es una unidad transaccional. Un conflicto a mitad de lote deja los
// usuarios/productos ya escritos sin revertir. Comportamiento documentado.
type OrderService struct {
	users     repository.UserRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	analytics repository.AnalyticsRepository
	log       *logger.Logger
}

// NewOrderService construye el servicio. `log` puede ser nil.
func NewOrderService(
	users repository.UserRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	analytics repository.AnalyticsRepository,
	log *logger.Logger,
) *OrderService {
	return &OrderService{
		users:     users,
		products:  products,
		orders:    orders,
		analytics: analytics,
		log:       log,
	}
}

// BatchInsertOrdersFromFile abre el dataset y delega en BatchInsertOrders.
// Un archivo inexistente se propaga como os.ErrNotExist para que el llamador
// lo distinga del resto de fallos.
func (s *OrderService) BatchInsertOrdersFromFile(ctx context.Context, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	return s.BatchInsertOrders(ctx, file)
}

// BatchInsertOrders ingesta un dataset JSON-lines completo. Devuelve cuántos
// pedidos se escribieron. Cualquier error (parseo, campo faltante, invariante
// de dominio, conflicto de pedido) es terminal para el lote: los pedidos
// pendientes no se escriben.
func (s *OrderService) BatchInsertOrders(ctx context.Context, source io.Reader) (int, error) {
	batchID := uuid.New().String()
	reader := jsonl.NewReader(source)

	var pending []*entity.Order
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}

		order, err := s.ingestRecord(ctx, batchID, record)
		if err != nil {
			return 0, err
		}
		pending = append(pending, order)
	}

	// Los pedidos no se repiten dentro de un mismo dataset, así que su
	// escritura se difiere y se hace en bloque.
	if err := s.orders.SaveAll(ctx, pending); err != nil {
		return 0, err
	}
	if s.log != nil {
		s.log.Info().Str("batch_id", batchID).Int("orders", len(pending)).Msg("lote ingestado")
	}
	return len(pending), nil
}

// ingestRecord procesa un registro: deduplica usuario y productos contra el
// almacenamiento, colapsa las apariciones de productos en líneas y construye el
// pedido verificando que no exista ya.
func (s *OrderService) ingestRecord(ctx context.Context, batchID string, record *dto.OrderRecord) (*entity.Order, error) {
	// [1] Usuario: si ya existe, el almacenamiento gana; los campos del
	// registro no lo actualizan.
	user, err := entity.NewUser(entity.UserID(*record.User.ID), *record.User.Name, *record.User.City)
	if err != nil {
		return nil, err
	}
	exists, err := s.users.Exists(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := s.users.Save(ctx, user); err != nil {
			return nil, err
		}
		if s.log != nil {
			s.log.Info().Str("batch_id", batchID).Stringer("user", user).Msg("usuario guardado")
		}
	}

	// [2] Productos: cada aparición cuenta una unidad; se conserva el orden de
	// aparición para persistir los nuevos.
	quantities := make(map[entity.ProductID]int64, len(record.Products))
	var seen []entity.ProductID
	for _, productRecord := range record.Products {
		product, err := entity.NewProduct(entity.ProductID(*productRecord.ID), *productRecord.Name, *productRecord.Price)
		if err != nil {
			return nil, err
		}
		if quantities[product.ID] == 0 {
			seen = append(seen, product.ID)
			exists, err := s.products.Exists(ctx, product.ID)
			if err != nil {
				return nil, err
			}
			if !exists {
				if err := s.products.Save(ctx, product); err != nil {
					return nil, err
				}
				if s.log != nil {
					s.log.Info().Str("batch_id", batchID).Stringer("product", product).Msg("producto guardado")
				}
			}
		}
		quantities[product.ID]++
	}

	// [3] Colapsar apariciones en líneas y construir el pedido con la fábrica
	// segura.
	lines := make([]entity.OrderLine, 0, len(seen))
	for _, productID := range seen {
		line, err := entity.NewOrderLine(productID, quantities[productID])
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	order, err := entity.NewOrder(entity.OrderID(*record.ID), user.ID, record.Created.Unix(), lines)
	if err != nil {
		return nil, err
	}

	// [4] Un pedido ya persistido es un conflicto terminal: se detecta antes de
	// encolar nada más y antes de volcar el lote pendiente.
	exists, err = s.orders.Exists(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.ConflictError{OrderID: int64(order.ID)}
	}
	return order, nil
}

// SearchOrdersByDateRange devuelve los pedidos creados dentro del rango
// [since, till], ambas cotas inclusive, reconstruidos con sus líneas.
func (s *OrderService) SearchOrdersByDateRange(ctx context.Context, since, till time.Time) ([]*entity.Order, error) {
	dateRange, err := entity.NewDateTimeRange(since, till)
	if err != nil {
		return nil, err
	}
	return s.orders.FindBetween(ctx, dateRange.SinceUnix(), dateRange.TillUnix())
}

// DefaultTopUsersLimit es el límite del ranking cuando el llamador no fija uno.
const DefaultTopUsersLimit = 3

// TopUsersByQuantity devuelve los usuarios con mayor cantidad total de
// productos comprados, en orden descendente.
func (s *OrderService) TopUsersByQuantity(ctx context.Context, limit int) ([]*entity.User, error) {
	if limit <= 0 {
		limit = DefaultTopUsersLimit
	}
	return s.analytics.TopUsersByQuantity(ctx, limit)
}
