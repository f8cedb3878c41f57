package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Krittamet-rrt/walletapi/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(t *testing.T) *domain.Transaction {
	return &domain.Transaction{
		ID:              8,
		Price:           dec(t, "30.00"),
		WalletID:        1,
		ItemID:          5,
		Description:     "Bought apple",
		TransactionDate: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func transactionColumns() []string {
	return []string{"id", "price", "wallet_id", "item_id", "description", "transaction_date"}
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(t)
	txn.ID = 0

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(txn.Price, txn.WalletID, txn.ItemID, txn.Description, txn.TransactionDate).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(8)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, txn)
	require.NoError(t, err)
	assert.Equal(t, int64(8), txn.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(t)

	rows := pgxmock.NewRows(transactionColumns()).
		AddRow(txn.ID, txn.Price, txn.WalletID, txn.ItemID, txn.Description, txn.TransactionDate)

	mock.ExpectQuery("SELECT .+ FROM transactions ORDER BY").
		WillReturnRows(rows)

	result, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Bought apple", result[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(t)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(txn.ID).
		WillReturnRows(pgxmock.NewRows(transactionColumns()).
			AddRow(txn.ID, txn.Price, txn.WalletID, txn.ItemID, txn.Description, txn.TransactionDate))

	result, err := repo.GetByID(context.Background(), txn.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, txn.Price.Equal(result.Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows(transactionColumns()))

	result, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
