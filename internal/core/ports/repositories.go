package ports

import (
	"context"

	"github.com/Krittamet-rrt/walletapi/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx run inside the purchase atomic unit and rely on
// row-level locking to serialize concurrent purchases on the same wallet.
type WalletRepository interface {
	Create(ctx context.Context, w *domain.Wallet) error
	GetByID(ctx context.Context, id int64) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance decimal.Decimal) error
	Update(ctx context.Context, w *domain.Wallet) error
	Delete(ctx context.Context, id int64) error
}

// MerchantRepository defines persistence operations for merchants.
// Delete cascades to the merchant's items at the store level.
type MerchantRepository interface {
	Create(ctx context.Context, m *domain.Merchant) error
	List(ctx context.Context) ([]domain.Merchant, error)
	GetByID(ctx context.Context, id int64) (*domain.Merchant, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Merchant, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance decimal.Decimal) error
	Update(ctx context.Context, m *domain.Merchant) error
	Delete(ctx context.Context, id int64) error
}

// ItemRepository defines persistence operations for items.
type ItemRepository interface {
	Create(ctx context.Context, i *domain.Item) error
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, i *domain.Item) error
	Delete(ctx context.Context, id int64) error
}

// TransactionRepository persists the append-only purchase audit log.
// Create runs inside the purchase atomic unit; there is no update or delete.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error
	List(ctx context.Context) ([]domain.Transaction, error)
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
