package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Krittamet-rrt/walletapi/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// Create inserts a new merchant and fills in the generated ID and timestamps.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	query := `INSERT INTO merchants (name, balance, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, m.Name, m.Balance, m.UserID).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// List returns all merchants ordered by ID.
func (r *MerchantRepo) List(ctx context.Context) ([]domain.Merchant, error) {
	query := `SELECT id, name, balance, user_id, created_at, updated_at
		FROM merchants ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	defer rows.Close()

	var merchants []domain.Merchant
	for rows.Next() {
		var m domain.Merchant
		if err := rows.Scan(&m.ID, &m.Name, &m.Balance, &m.UserID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan merchant: %w", err)
		}
		merchants = append(merchants, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	return merchants, nil
}

// GetByID fetches a merchant by ID (without locking).
func (r *MerchantRepo) GetByID(ctx context.Context, id int64) (*domain.Merchant, error) {
	query := `SELECT id, name, balance, user_id, created_at, updated_at
		FROM merchants WHERE id = $1`

	m := &domain.Merchant{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Balance, &m.UserID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by id: %w", err)
	}
	return m, nil
}

// GetByIDForUpdate fetches a merchant by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *MerchantRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Merchant, error) {
	query := `SELECT id, name, balance, user_id, created_at, updated_at
		FROM merchants WHERE id = $1 FOR UPDATE`

	m := &domain.Merchant{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Balance, &m.UserID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant for update by id: %w", err)
	}
	return m, nil
}

// UpdateBalance sets a merchant's balance within a transaction.
func (r *MerchantRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance decimal.Decimal) error {
	query := `UPDATE merchants SET balance = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balance, id)
	if err != nil {
		return fmt.Errorf("update merchant balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant not found: %d", id)
	}
	return nil
}

// Update persists merchant name and balance changes outside the purchase path.
func (r *MerchantRepo) Update(ctx context.Context, m *domain.Merchant) error {
	query := `UPDATE merchants SET name = $1, balance = $2, updated_at = NOW() WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, m.Name, m.Balance, m.ID)
	if err != nil {
		return fmt.Errorf("update merchant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant not found: %d", m.ID)
	}
	return nil
}

// Delete removes a merchant by ID. The merchant's items go with it
// via ON DELETE CASCADE.
func (r *MerchantRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM merchants WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete merchant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant not found: %d", id)
	}
	return nil
}
