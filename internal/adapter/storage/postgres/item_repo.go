package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Krittamet-rrt/walletapi/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ItemRepo implements ports.ItemRepository.
type ItemRepo struct {
	pool Pool
}

// NewItemRepo creates a new ItemRepo.
func NewItemRepo(pool Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// Create inserts a new item and fills in the generated ID and timestamps.
func (r *ItemRepo) Create(ctx context.Context, i *domain.Item) error {
	query := `INSERT INTO items (name, description, price, tax, merchant_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, i.Name, i.Description, i.Price, i.Tax, i.MerchantID).
		Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// List returns all items ordered by ID.
func (r *ItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT id, name, description, price, tax, merchant_id, created_at, updated_at
		FROM items ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var i domain.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.Tax, &i.MerchantID, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetByID fetches an item by ID.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `SELECT id, name, description, price, tax, merchant_id, created_at, updated_at
		FROM items WHERE id = $1`

	i := &domain.Item{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Name, &i.Description, &i.Price, &i.Tax, &i.MerchantID, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return i, nil
}

// Update persists item changes. The owning merchant is never reassigned.
func (r *ItemRepo) Update(ctx context.Context, i *domain.Item) error {
	query := `UPDATE items SET name = $1, description = $2, price = $3, tax = $4, updated_at = NOW()
		WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, i.Name, i.Description, i.Price, i.Tax, i.ID)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item not found: %d", i.ID)
	}
	return nil
}

// Delete removes an item by ID.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM items WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item not found: %d", id)
	}
	return nil
}
