package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a buyer's spendable balance account.
type Wallet struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	UserID    *int64          `json:"user_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CanAfford reports whether the wallet can pay the given price.
// Equality passes: a purchase may drain the balance to exactly zero.
func (w *Wallet) CanAfford(price decimal.Decimal) bool {
	return !w.Balance.LessThan(price)
}

// WalletUpdate is a partial update. Nil fields are left untouched.
type WalletUpdate struct {
	Name    *string
	Balance *decimal.Decimal
}

// ApplyTo merges the update into the wallet field by field.
func (u WalletUpdate) ApplyTo(w *Wallet) {
	if u.Name != nil {
		w.Name = *u.Name
	}
	if u.Balance != nil {
		w.Balance = *u.Balance
	}
}
