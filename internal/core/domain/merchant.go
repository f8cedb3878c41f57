package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Merchant is a seller's revenue-accumulating account. It owns items;
// deleting a merchant cascades to its items at the store level.
type Merchant struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	UserID    *int64          `json:"user_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MerchantUpdate is a partial update. Nil fields are left untouched.
type MerchantUpdate struct {
	Name    *string
	Balance *decimal.Decimal
}

// ApplyTo merges the update into the merchant field by field.
func (u MerchantUpdate) ApplyTo(m *Merchant) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Balance != nil {
		m.Balance = *u.Balance
	}
}
