package dto

import (
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// ErrorResponse respuesta de error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchInsertResponse resultado de una ingesta por lotes.
type BatchInsertResponse struct {
	Inserted int `json:"inserted"`
}

// OrderLineResponse salida de una línea de pedido.
type OrderLineResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// OrderResponse salida de un pedido reconstruido.
type OrderResponse struct {
	ID      int64               `json:"id"`
	UserID  int64               `json:"user_id"`
	Created time.Time           `json:"created"`
	Lines   []OrderLineResponse `json:"lines"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// OrderListResponse lista de pedidos de una consulta por rango.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// UserListResponse lista de usuarios del ranking.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int             `json:"total"`
}

// ToOrderResponse convierte el agregado a su DTO de salida.
func ToOrderResponse(o *entity.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineResponse{ProductID: int64(l.ProductID), Quantity: l.Quantity})
	}
	return OrderResponse{
		ID:      int64(o.ID),
		UserID:  int64(o.UserID),
		Created: o.CreatedTime(),
		Lines:   lines,
	}
}

// ToUserResponse convierte el agregado a su DTO de salida.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: int64(u.ID), Name: u.Name, City: u.City}
}
