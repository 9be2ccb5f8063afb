package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Pedidos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta el router completo sobre repositorios en memoria y
// devuelve también los repos para sembrar datos.
func buildTestApp(t *testing.T) (*fiber.App, *memory.UserRepo, *memory.OrderRepo) {
	t.Helper()

	users := memory.NewUserRepository()
	products := memory.NewProductRepository()
	orders := memory.NewOrderRepository()
	analytics := memory.NewAnalyticsRepository(users, orders)
	service := usecase.NewOrderService(users, products, orders, analytics, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{OrderUC: service})
	return app, users, orders
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func seedOrder(t *testing.T, orders *memory.OrderRepo, id entity.OrderID, userID entity.UserID, created int64, lines []entity.OrderLine) {
	t.Helper()
	order, err := entity.NewOrder(id, userID, created, lines)
	require.NoError(t, err)
	require.NoError(t, orders.Save(context.Background(), order))
}

const validRecord = `{"id": 1, "created": 1000, "user": {"id": 7, "name": "ana", "city": "cali"}, "products": [{"id": 100, "name": "café", "price": 1250}]}`

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/orders/batch
// ──────────────────────────────────────────────────────────────────────────────

func TestBatchInsert_Retorna201ConElConteo(t *testing.T) {
	app, _, orders := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/orders/batch", validRecord+"\n")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.BatchInsertResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Inserted)

	exists, err := orders.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBatchInsert_CuerpoVacioRetorna400(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/orders/batch", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBatchInsert_LineaMalformadaRetorna400(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/orders/batch", "{no es json}\n")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PARSE_ERROR")
}

func TestBatchInsert_CampoFaltanteRetorna422(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/orders/batch",
		`{"id": 1, "created": 1000, "products": []}`+"\n")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_FIELD")
}

func TestBatchInsert_PedidoDuplicadoRetorna409(t *testing.T) {
	app, _, orders := buildTestApp(t)
	seedOrder(t, orders, 1, 99, 500, []entity.OrderLine{{ProductID: 1, Quantity: 1}})

	resp := doRequest(t, app, http.MethodPost, "/api/orders/batch", validRecord+"\n")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "CONFLICT")
}

func TestBatchInsert_IdentificadorNegativoRetorna422(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/orders/batch",
		`{"id": -1, "created": 1000, "user": {"id": 7, "name": "a", "city": "c"}, "products": []}`+"\n")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/orders
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_FiltraPorRangoInclusivo(t *testing.T) {
	app, _, orders := buildTestApp(t)
	line := []entity.OrderLine{{ProductID: 1, Quantity: 1}}
	seedOrder(t, orders, 1, 1, 10, line)
	seedOrder(t, orders, 2, 1, 20, line)
	seedOrder(t, orders, 3, 1, 30, line)

	resp := doRequest(t, app, http.MethodGet,
		"/api/orders/?since=1970-01-01T00:00:10Z&till=1970-01-01T00:00:20Z", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.OrderListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 2, body.Total)
	assert.Equal(t, int64(1), body.Items[0].ID)
	assert.Equal(t, int64(2), body.Items[1].ID)
}

func TestSearch_FechaInvalidaRetorna400(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/orders/?since=ayer&till=1970-01-01T00:00:20Z", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearch_RangoInvertidoRetorna400(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet,
		"/api/orders/?since=1970-01-01T00:00:20Z&till=1970-01-01T00:00:10Z", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_RANGE")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/users/top
// ──────────────────────────────────────────────────────────────────────────────

func TestTopUsers_DevuelveElRankingDescendente(t *testing.T) {
	app, users, orders := buildTestApp(t)

	// U1:5, U2:9 unidades.
	for userID, quantity := range map[entity.UserID]int64{1: 5, 2: 9} {
		user, err := entity.NewUser(userID, "u", "c")
		require.NoError(t, err)
		require.NoError(t, users.Save(context.Background(), user))
		seedOrder(t, orders, entity.OrderID(userID), userID, 100,
			[]entity.OrderLine{{ProductID: 1, Quantity: quantity}})
	}

	resp := doRequest(t, app, http.MethodGet, "/api/users/top?limit=2", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.UserListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 2, body.Total)
	assert.Equal(t, int64(2), body.Items[0].ID)
	assert.Equal(t, int64(1), body.Items[1].ID)
}

func TestHealth_Retorna200(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/health", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
