package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/infrastructure/sqlite"
)

// newTestDB abre una base temporal con el esquema creado.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.CreateSchema(context.Background(), db))
	return db
}

// seedUser persiste un usuario de prueba.
func seedUser(t *testing.T, db *sql.DB, id entity.UserID, name, city string) *entity.User {
	t.Helper()
	user, err := entity.NewUser(id, name, city)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewUserRepository(db).Save(context.Background(), user))
	return user
}

// seedProduct persiste un producto de prueba.
func seedProduct(t *testing.T, db *sql.DB, id entity.ProductID) {
	t.Helper()
	product, err := entity.NewProduct(id, "producto", 100)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewProductRepository(db).Save(context.Background(), product))
}

func TestSchema_CrearYBorrar(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, sqlite.DropSchema(ctx, db))
	// Tras el borrado se puede recrear sin error.
	require.NoError(t, sqlite.CreateSchema(ctx, db))
}

func TestUserRepo_SaveExistsFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewUserRepository(db)

	exists, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, exists)

	seedUser(t, db, 1, "ana", "cali")

	exists, err = repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "ana", found.Name)
	assert.Equal(t, "cali", found.City)

	missing, err := repo.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_InsercionDuplicadaEsErrDuplicate(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 1, "ana", "cali")

	err := sqlite.NewUserRepository(db).Save(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestOrderRepo_RoundTripConservaLasLineas(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedUser(t, db, 1, "ana", "cali")
	for _, id := range []entity.ProductID{7, 3, 5} {
		seedProduct(t, db, id)
	}

	// Tres productos distintos, cantidad 1 cada uno, construidos en desorden.
	order, err := entity.NewOrder(42, 1, 1_000, []entity.OrderLine{
		{ProductID: 7, Quantity: 1},
		{ProductID: 3, Quantity: 1},
		{ProductID: 5, Quantity: 1},
	})
	require.NoError(t, err)

	repo := sqlite.NewOrderRepository(db)
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindBetween(ctx, 0, 2_000)
	require.NoError(t, err)
	require.Len(t, found, 1)

	rebuilt := found[0]
	assert.True(t, order.Equal(rebuilt))
	assert.Equal(t, order.UserID, rebuilt.UserID)
	assert.Equal(t, order.Created, rebuilt.Created)
	// El conjunto (producto, cantidad) se conserva, independiente del orden de
	// inserción.
	assert.ElementsMatch(t, order.Lines, rebuilt.Lines)
}

func TestOrderRepo_FindBetweenCotasInclusive(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedUser(t, db, 1, "ana", "cali")
	seedProduct(t, db, 1)

	repo := sqlite.NewOrderRepository(db)
	for i, created := range []int64{10, 20, 30} {
		order, err := entity.NewOrder(entity.OrderID(i+1), 1, created, []entity.OrderLine{{ProductID: 1, Quantity: 1}})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, order))
	}

	// Solo el pedido con created=20 cae dentro de (15, 25).
	found, err := repo.FindBetween(ctx, 15, 25)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(20), found[0].Created)

	// BETWEEN incluye ambas cotas.
	found, err = repo.FindBetween(ctx, 10, 20)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, int64(10), found[0].Created)
	assert.Equal(t, int64(20), found[1].Created)
}

func TestOrderRepo_SaveAllEsTodoONada(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedUser(t, db, 1, "ana", "cali")
	seedProduct(t, db, 1)

	repo := sqlite.NewOrderRepository(db)
	lines := []entity.OrderLine{{ProductID: 1, Quantity: 1}}

	first, err := entity.NewOrder(1, 1, 100, lines)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	fresh, err := entity.NewOrder(2, 1, 200, lines)
	require.NoError(t, err)
	duplicate, err := entity.NewOrder(1, 1, 300, lines)
	require.NoError(t, err)

	err = repo.SaveAll(ctx, []*entity.Order{fresh, duplicate})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// La transacción se revirtió: el pedido nuevo del lote fallido no quedó.
	exists, err := repo.Exists(ctx, 2)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAnalyticsRepo_TopUsersPorCantidad(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// U1 compra 5 unidades, U2 compra 9, U3 compra 2.
	seedUser(t, db, 1, "u1", "a")
	seedUser(t, db, 2, "u2", "b")
	seedUser(t, db, 3, "u3", "c")
	seedProduct(t, db, 1)

	repo := sqlite.NewOrderRepository(db)
	totals := map[entity.UserID]int64{1: 5, 2: 9, 3: 2}
	orderID := entity.OrderID(1)
	for userID, quantity := range totals {
		order, err := entity.NewOrder(orderID, userID, 100, []entity.OrderLine{{ProductID: 1, Quantity: quantity}})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, order))
		orderID++
	}

	top, err := sqlite.NewAnalyticsRepository(db).TopUsersByQuantity(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, entity.UserID(2), top[0].ID, "U2 (9 unidades) primero")
	assert.Equal(t, entity.UserID(1), top[1].ID, "U1 (5 unidades) segundo")
}
