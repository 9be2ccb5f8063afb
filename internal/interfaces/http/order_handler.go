package http

import (
	"bytes"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para pedidos.
type OrderHandler struct {
	uc *usecase.OrderService
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderService) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// BatchInsert ingiere un cuerpo JSON-lines (un pedido por línea) y responde
// con el número de pedidos insertados.
func (h *OrderHandler) BatchInsert(c *fiber.Ctx) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BODY", Message: "el cuerpo no puede estar vacío"})
	}

	inserted, err := h.uc.BatchInsertOrders(c.Context(), bytes.NewReader(body))
	if err != nil {
		return writeIngestError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BatchInsertResponse{Inserted: inserted})
}

// Search devuelve los pedidos cuyo created cae dentro de [since, till].
// Ambos parámetros se aceptan en RFC3339.
func (h *OrderHandler) Search(c *fiber.Ctx) error {
	since, err := parseTimeParam(c.Query("since"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SINCE", Message: "since debe ser una fecha RFC3339"})
	}
	till, err := parseTimeParam(c.Query("till"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TILL", Message: "till debe ser una fecha RFC3339"})
	}

	orders, err := h.uc.SearchOrdersByDateRange(c.Context(), since, till)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "since debe ser anterior a till"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.ToOrderResponse(o))
	}
	return c.JSON(dto.OrderListResponse{Items: items, Total: len(items)})
}

// TopUsers devuelve los usuarios que más unidades han comprado, en orden
// descendente. limit es opcional.
func (h *OrderHandler) TopUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", usecase.DefaultTopUsersLimit)
	if limit > 100 {
		limit = 100
	}

	users, err := h.uc.TopUsersByQuantity(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.ToUserResponse(u))
	}
	return c.JSON(dto.UserListResponse{Items: items, Total: len(items)})
}

// writeIngestError traduce los fallos de la ingesta a códigos HTTP.
func writeIngestError(c *fiber.Ctx, err error) error {
	var parseErr *domain.ParsingError
	if errors.As(err, &parseErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PARSE_ERROR", Message: parseErr.Error()})
	}
	var missing *domain.MissingFieldError
	if errors.As(err, &missing) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_FIELD", Message: missing.Error()})
	}
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: conflict.Error()})
	}
	if errors.Is(err, domain.ErrDomain) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("parámetro requerido")
	}
	return time.Parse(time.RFC3339, raw)
}
