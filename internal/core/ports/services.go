package ports

import (
	"context"
	"time"

	"github.com/Krittamet-rrt/walletapi/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// PurchaseService executes one item purchase as an atomic state transition:
// wallet debit, merchant credit, and transaction insert commit together or
// not at all.
type PurchaseService interface {
	BuyItem(ctx context.Context, itemID, walletID int64) (*PurchaseResult, error)
}

// PurchaseResult is the outcome of a committed purchase.
type PurchaseResult struct {
	WalletBalance decimal.Decimal // balance after the debit
	Item          PurchasedItem
	Merchant      PurchasedMerchant
	Transaction   *domain.Transaction
}

// PurchasedItem summarizes the item that was bought.
type PurchasedItem struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// PurchasedMerchant summarizes the credited merchant.
type PurchasedMerchant struct {
	Name string
}

// LedgerService covers wallet, merchant, item and transaction management
// outside the purchase path. Lookups of missing entities surface as
// not-found application errors rather than nil results.
type LedgerService interface {
	CreateWallet(ctx context.Context, w *domain.Wallet) error
	GetWallet(ctx context.Context, id int64) (*domain.Wallet, error)
	UpdateWallet(ctx context.Context, id int64, upd domain.WalletUpdate) (*domain.Wallet, error)
	DeleteWallet(ctx context.Context, id int64) error

	CreateMerchant(ctx context.Context, m *domain.Merchant) error
	ListMerchants(ctx context.Context) ([]domain.Merchant, error)
	GetMerchant(ctx context.Context, id int64) (*domain.Merchant, error)
	UpdateMerchant(ctx context.Context, id int64, upd domain.MerchantUpdate) (*domain.Merchant, error)
	DeleteMerchant(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, i *domain.Item) error
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	UpdateItem(ctx context.Context, id int64, upd domain.ItemUpdate) (*domain.Item, error)
	DeleteItem(ctx context.Context, id int64) error

	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
}

// AuthService defines identity business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	UpdateProfile(ctx context.Context, userID int64, currentPassword string, upd domain.UserUpdate) (*domain.User, error)
}

// RegisterRequest holds validated input for user registration.
type RegisterRequest struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID int64) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID int64
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}
