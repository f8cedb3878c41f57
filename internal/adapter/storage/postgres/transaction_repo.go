package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Krittamet-rrt/walletapi/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
// The transactions table is append-only: rows are inserted inside the
// purchase transaction and never modified afterwards.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a purchase record within the purchase transaction and
// fills in the generated ID.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (price, wallet_id, item_id, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := tx.QueryRow(ctx, query, t.Price, t.WalletID, t.ItemID, t.Description, t.TransactionDate).
		Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// List returns all transactions, newest first.
func (r *TransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT id, price, wallet_id, item_id, description, transaction_date
		FROM transactions ORDER BY transaction_date DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.Price, &t.WalletID, &t.ItemID, &t.Description, &t.TransactionDate); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

// GetByID fetches a transaction by ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `SELECT id, price, wallet_id, item_id, description, transaction_date
		FROM transactions WHERE id = $1`

	t := &domain.Transaction{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Price, &t.WalletID, &t.ItemID, &t.Description, &t.TransactionDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	return t, nil
}
