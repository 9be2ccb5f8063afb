package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC *usecase.OrderService
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	orderHandler := NewOrderHandler(deps.OrderUC)

	orders := api.Group("/orders")
	orders.Post("/batch", orderHandler.BatchInsert)
	orders.Get("/", orderHandler.Search)

	users := api.Group("/users")
	users.Get("/top", orderHandler.TopUsers)
}
