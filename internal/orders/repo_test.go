package orders

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/ariefcatur/go-retail-console.git/internal/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests untuk jalur transaksi; butuh Postgres hidup.
// Jalankan dengan POSTGRES_DSN, di-skip kalau kosong.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_DSN not set")
	}
	require.NoError(t, postgres.Migrate(dsn))
	pool, err := postgres.Connect(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedUser(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO users(username, password, role)
		VALUES ($1, 'x', 'CUSTOMER') RETURNING id`, uuid.NewString()).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedProduct(t *testing.T, pool *pgxpool.Pool, stock int) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO products(name, price, stock)
		VALUES ('test product', 10.00, $1) RETURNING id`, stock).Scan(&id)
	require.NoError(t, err)
	return id
}

func stockOf(t *testing.T, pool *pgxpool.Pool, productID int64) int {
	t.Helper()
	var stock int
	err := pool.QueryRow(context.Background(), `SELECT stock FROM products WHERE id = $1`, productID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func TestApproveTxDeductsEachLineAndSetsAccepted(t *testing.T) {
	pool := testPool(t)
	repo := &Repo{DB: pool}
	ctx := context.Background()

	userID := seedUser(t, pool)
	prodA := seedProduct(t, pool, 5)
	prodB := seedProduct(t, pool, 10)

	orderID, err := repo.CreateOrderTx(ctx, userID, 50.00, []LineInput{
		{InventoryItemID: prodA, Quantity: 2, Price: 10.00},
		{InventoryItemID: prodB, Quantity: 3, Price: 10.00},
	}, PaymentCard)
	require.NoError(t, err)

	require.NoError(t, repo.ApproveTx(ctx, orderID))

	assert.Equal(t, 3, stockOf(t, pool, prodA))
	assert.Equal(t, 7, stockOf(t, pool, prodB))

	tr, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, tr.Status)

	// sudah ACCEPTED, approve kedua ditolak tanpa potong stok lagi
	assert.ErrorIs(t, repo.ApproveTx(ctx, orderID), ErrInvalidTransition)
	assert.Equal(t, 3, stockOf(t, pool, prodA))
}

func TestApproveTxShortageLeavesAllStockUntouched(t *testing.T) {
	pool := testPool(t)
	repo := &Repo{DB: pool}
	ctx := context.Background()

	userID := seedUser(t, pool)
	prodA := seedProduct(t, pool, 5) // cukup, kena potong dulu di dalam tx
	prodB := seedProduct(t, pool, 1) // kurang

	orderID, err := repo.CreateOrderTx(ctx, userID, 50.00, []LineInput{
		{InventoryItemID: prodA, Quantity: 2, Price: 10.00},
		{InventoryItemID: prodB, Quantity: 3, Price: 10.00},
	}, PaymentOnline)
	require.NoError(t, err)

	err = repo.ApproveTx(ctx, orderID)
	require.ErrorIs(t, err, ErrInsufficientStock)

	var short *InsufficientStockError
	require.ErrorAs(t, err, &short)
	require.Len(t, short.Details, 1)
	assert.Equal(t, prodB, short.Details[0].InventoryItemID)
	assert.Equal(t, 3, short.Details[0].Required)
	assert.Equal(t, 1, short.Details[0].Available)

	// rollback penuh: potongan line pertama ikut batal
	assert.Equal(t, 5, stockOf(t, pool, prodA))
	assert.Equal(t, 1, stockOf(t, pool, prodB))

	tr, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, tr.Status)
}

func TestApproveTxDeletedProductReportsZeroAvailable(t *testing.T) {
	pool := testPool(t)
	repo := &Repo{DB: pool}
	ctx := context.Background()

	userID := seedUser(t, pool)
	prodID := seedProduct(t, pool, 5)

	orderID, err := repo.CreateOrderTx(ctx, userID, 20.00, []LineInput{
		{InventoryItemID: prodID, Quantity: 2, Price: 10.00},
	}, PaymentCOD)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, prodID)
	require.NoError(t, err)

	err = repo.ApproveTx(ctx, orderID)
	var short *InsufficientStockError
	require.ErrorAs(t, err, &short)
	require.Len(t, short.Details, 1)
	assert.Equal(t, 0, short.Details[0].Available)

	tr, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, tr.Status)
}

func TestConcurrentApprovalsCannotOversell(t *testing.T) {
	pool := testPool(t)
	repo := &Repo{DB: pool}
	ctx := context.Background()

	userID := seedUser(t, pool)
	prodID := seedProduct(t, pool, 5)

	var orderIDs [2]int64
	for i := range orderIDs {
		id, err := repo.CreateOrderTx(ctx, userID, 40.00, []LineInput{
			{InventoryItemID: prodID, Quantity: 4, Price: 10.00},
		}, PaymentCard)
		require.NoError(t, err)
		orderIDs[i] = id
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range orderIDs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.ApproveTx(ctx, orderIDs[i])
		}(i)
	}
	wg.Wait()

	// persis satu yang menang; stok tidak pernah minus
	var ok, short int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, ErrInsufficientStock):
			short++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, short)
	assert.Equal(t, 1, stockOf(t, pool, prodID))
}

func TestDeclineTxRefundsPaymentAtomically(t *testing.T) {
	pool := testPool(t)
	repo := &Repo{DB: pool}
	ctx := context.Background()

	userID := seedUser(t, pool)
	prodID := seedProduct(t, pool, 5)

	orderID, err := repo.CreateOrderTx(ctx, userID, 20.00, []LineInput{
		{InventoryItemID: prodID, Quantity: 2, Price: 10.00},
	}, PaymentOnline)
	require.NoError(t, err)

	require.NoError(t, repo.DeclineTx(ctx, orderID))

	tr, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, tr.Status)
	assert.Equal(t, 5, stockOf(t, pool, prodID))

	pay, err := repo.PaymentByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, PaymentRefunded, pay.Status)

	// REJECTED terminal: decline kedua gagal, payment tetap REFUNDED
	assert.ErrorIs(t, repo.DeclineTx(ctx, orderID), ErrInvalidTransition)
	pay, err = repo.PaymentByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, PaymentRefunded, pay.Status)
}
