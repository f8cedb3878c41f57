package dto

import (
	"time"

	"github.com/Krittamet-rrt/walletapi/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ---- Purchase ----

// PurchaseResponse is the response body for a successful purchase.
type PurchaseResponse struct {
	Message  string               `json:"message"`
	Amount   decimal.Decimal      `json:"amount"` // wallet balance after the debit
	Item     PurchaseItemInfo     `json:"item"`
	Merchant PurchaseMerchantInfo `json:"merchant"`
}

// PurchaseItemInfo summarizes the purchased item.
type PurchaseItemInfo struct {
	ItemID int64           `json:"item_id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// PurchaseMerchantInfo summarizes the credited merchant.
type PurchaseMerchantInfo struct {
	Name string `json:"name"`
}

// ---- Wallets ----

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	Name    string           `json:"name" binding:"required,min=1,max=100"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
	UserID  *int64           `json:"user_id,omitempty"`
}

// UpdateWalletRequest is the request body for a partial wallet update.
// Absent fields are left unchanged.
type UpdateWalletRequest struct {
	Name    *string          `json:"name,omitempty"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

// WalletResponse is the wallet representation returned to clients.
type WalletResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	UserID    *int64          `json:"user_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToWalletResponse converts a domain wallet.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:        w.ID,
		Name:      w.Name,
		Balance:   w.Balance,
		UserID:    w.UserID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// ---- Merchants ----

// CreateMerchantRequest is the request body for merchant creation.
type CreateMerchantRequest struct {
	Name    string           `json:"name" binding:"required,min=1,max=100"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
	UserID  *int64           `json:"user_id,omitempty"`
}

// UpdateMerchantRequest is the request body for a partial merchant update.
type UpdateMerchantRequest struct {
	Name    *string          `json:"name,omitempty"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

// MerchantResponse is the merchant representation returned to clients.
type MerchantResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	UserID    *int64          `json:"user_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToMerchantResponse converts a domain merchant.
func ToMerchantResponse(m *domain.Merchant) MerchantResponse {
	return MerchantResponse{
		ID:        m.ID,
		Name:      m.Name,
		Balance:   m.Balance,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ---- Items ----

// CreateItemRequest is the request body for item creation. The owning
// merchant comes from the URL path, not the body.
type CreateItemRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=100"`
	Description *string          `json:"description,omitempty"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	Tax         *decimal.Decimal `json:"tax,omitempty"`
}

// UpdateItemRequest is the request body for a partial item update.
type UpdateItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Tax         *decimal.Decimal `json:"tax,omitempty"`
}

// ItemResponse is the item representation returned to clients.
type ItemResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	Tax         *decimal.Decimal `json:"tax,omitempty"`
	MerchantID  int64            `json:"merchant_id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ToItemResponse converts a domain item.
func ToItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Tax:         i.Tax,
		MerchantID:  i.MerchantID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ---- Transactions ----

// TransactionResponse is the transaction representation returned to clients.
type TransactionResponse struct {
	ID              int64           `json:"id"`
	Price           decimal.Decimal `json:"price"`
	WalletID        int64           `json:"wallet_id"`
	ItemID          int64           `json:"item_id"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// ToTransactionResponse converts a domain transaction.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		Price:           t.Price,
		WalletID:        t.WalletID,
		ItemID:          t.ItemID,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
	}
}

// ---- Users ----

// CreateUserRequest is the request body for user registration.
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
}

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// ChangePasswordRequest is the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=128"`
}

// UpdateUserRequest is the request body for a partial profile update.
// The current password is required to authorize the change.
type UpdateUserRequest struct {
	Password  string  `json:"password" binding:"required"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// UserResponse is the user representation returned to clients.
// The password hash is never serialized.
type UserResponse struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	RegisterDate  time.Time  `json:"register_date"`
	LastLoginDate *time.Time `json:"last_login_date,omitempty"`
}

// ToUserResponse converts a domain user.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		RegisterDate:  u.RegisterDate,
		LastLoginDate: u.LastLoginDate,
	}
}
