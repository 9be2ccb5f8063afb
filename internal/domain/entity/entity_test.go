package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ley de identidad: dos entidades del mismo tipo con el mismo identificador son
// iguales (y tienen el mismo hash) sin importar el resto de sus campos.
// ──────────────────────────────────────────────────────────────────────────────

func TestUser_IgualdadPorIdentificador(t *testing.T) {
	lhs, err := entity.NewUser(1, "name1", "city1")
	require.NoError(t, err)
	rhs, err := entity.NewUser(1, "name2", "city2")
	require.NoError(t, err)

	assert.True(t, lhs.Equal(rhs), "misma identidad => iguales aunque cambien los campos")
	assert.Equal(t, lhs.Hash(), rhs.Hash())
}

func TestUser_DesigualdadPorIdentificador(t *testing.T) {
	lhs, _ := entity.NewUser(1, "name", "city")
	rhs, _ := entity.NewUser(2, "name", "city")

	assert.False(t, lhs.Equal(rhs))
	assert.NotEqual(t, lhs.Hash(), rhs.Hash())
}

func TestProduct_IgualdadPorIdentificador(t *testing.T) {
	lhs, _ := entity.NewProduct(1, "name1", 2)
	rhs, _ := entity.NewProduct(1, "otro", 999)

	assert.True(t, lhs.Equal(rhs))
	assert.Equal(t, lhs.Hash(), rhs.Hash())
}

func TestOrder_IgualdadPorIdentificador(t *testing.T) {
	created1 := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	created2 := time.Date(2023, 12, 2, 0, 0, 0, 0, time.UTC)

	lhs, err := entity.NewOrderAt(1, 1, created1, []entity.OrderLine{
		{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 2}, {ProductID: 3, Quantity: 3},
	})
	require.NoError(t, err)
	rhs, err := entity.NewOrderAt(1, 2, created2, []entity.OrderLine{
		{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 2}, {ProductID: 3, Quantity: 1},
	})
	require.NoError(t, err)

	assert.True(t, lhs.Equal(rhs), "la identidad del pedido no depende de líneas, usuario ni fecha")
	assert.Equal(t, lhs.Hash(), rhs.Hash())
}

func TestOrder_DesigualdadPorIdentificador(t *testing.T) {
	created := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	lines := []entity.OrderLine{{ProductID: 1, Quantity: 1}}

	lhs, _ := entity.NewOrderAt(1, 1, created, lines)
	rhs, _ := entity.NewOrderAt(2, 1, created, lines)

	assert.False(t, lhs.Equal(rhs))
	assert.NotEqual(t, lhs.Hash(), rhs.Hash())
}

func TestHash_DistingueTiposConMismoID(t *testing.T) {
	u, _ := entity.NewUser(7, "n", "c")
	p, _ := entity.NewProduct(7, "n", 1)

	assert.NotEqual(t, u.Hash(), p.Hash(), "el hash incluye el tipo concreto, no solo el id")
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes de construcción
// ──────────────────────────────────────────────────────────────────────────────

func TestIdentificadorNegativo_Prohibido(t *testing.T) {
	_, err := entity.NewUser(-1, "name", "city")
	assert.ErrorIs(t, err, domain.ErrNegativeIdentifier)

	_, err = entity.NewProduct(-1, "name", 1)
	assert.ErrorIs(t, err, domain.ErrNegativeIdentifier)

	_, err = entity.NewOrder(-1, 1, 0, nil)
	assert.ErrorIs(t, err, domain.ErrNegativeIdentifier)
}

func TestOrderLine_CantidadCeroProhibida(t *testing.T) {
	_, err := entity.NewOrderLine(1, 0)
	assert.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
}

func TestOrderLine_CantidadNegativaProhibida(t *testing.T) {
	_, err := entity.NewOrderLine(1, -1)
	assert.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
}

func TestOrder_LineaInvalidaInvalidaElPedido(t *testing.T) {
	created := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	_, err := entity.NewOrderAt(1, 1, created, []entity.OrderLine{{ProductID: 1, Quantity: 0}})
	assert.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestOrder_FabricaSeguraDevuelvePedidoValido(t *testing.T) {
	created := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	order, err := entity.NewOrderAt(1, 1, created, []entity.OrderLine{{ProductID: 1, Quantity: 1}})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderID(1), order.ID)
	assert.Equal(t, created.Unix(), order.Created)
}

func TestOrder_ColapsaLineasPorProducto(t *testing.T) {
	order, err := entity.NewOrder(1, 1, 1700000000, []entity.OrderLine{
		{ProductID: 5, Quantity: 1},
		{ProductID: 3, Quantity: 2},
		{ProductID: 5, Quantity: 4},
	})
	require.NoError(t, err)

	// Una línea por producto, cantidades sumadas, ordenadas por producto.
	assert.Equal(t, []entity.OrderLine{
		{ProductID: 3, Quantity: 2},
		{ProductID: 5, Quantity: 5},
	}, order.Lines)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inmutabilidad y representación
// ──────────────────────────────────────────────────────────────────────────────

func TestUser_ChangeNameDevuelveCopiaConMismaIdentidad(t *testing.T) {
	original, _ := entity.NewUser(1, "ana", "bogotá")
	renamed := original.ChangeName("maría")

	assert.Equal(t, "ana", original.Name, "la instancia original no se modifica")
	assert.Equal(t, "maría", renamed.Name)
	assert.True(t, original.Equal(renamed), "la copia comparte la identidad")
}

func TestUser_ChangeCityDevuelveCopiaConMismaIdentidad(t *testing.T) {
	original, _ := entity.NewUser(1, "ana", "bogotá")
	moved := original.ChangeCity("medellín")

	assert.Equal(t, "bogotá", original.City)
	assert.Equal(t, "medellín", moved.City)
	assert.True(t, original.Equal(moved))
}

func TestString_EnumeraCamposEnOrdenDeDeclaracion(t *testing.T) {
	u, _ := entity.NewUser(1, "ana", "cali")
	assert.Equal(t, "User(ID=1,Name=ana,City=cali)", u.String())

	p, _ := entity.NewProduct(2, "café", 1250)
	assert.Equal(t, "Product(ID=2,Name=café,Price=1250)", p.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// DateTimeRange
// ──────────────────────────────────────────────────────────────────────────────

func TestDateTimeRange_InvarianteSinceAntesDeTill(t *testing.T) {
	since := time.Date(2018, 11, 16, 1, 29, 4, 0, time.UTC)
	till := time.Date(2018, 11, 16, 10, 45, 30, 0, time.UTC)

	r, err := entity.NewDateTimeRange(since, till)
	require.NoError(t, err)
	assert.Equal(t, since.Unix(), r.SinceUnix())
	assert.Equal(t, till.Unix(), r.TillUnix())

	_, err = entity.NewDateTimeRange(till, since)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = entity.NewDateTimeRange(since, since)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange, "un rango vacío tampoco es válido")
}
