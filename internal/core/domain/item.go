package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a purchasable good with a fixed price, owned by exactly one merchant.
type Item struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	Tax         *decimal.Decimal `json:"tax,omitempty"`
	MerchantID  int64            `json:"merchant_id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ItemUpdate is a partial update. Nil fields are left untouched.
type ItemUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Tax         *decimal.Decimal
}

// ApplyTo merges the update into the item field by field. The owning
// merchant is fixed at creation and cannot be reassigned here.
func (u ItemUpdate) ApplyTo(i *Item) {
	if u.Name != nil {
		i.Name = *u.Name
	}
	if u.Description != nil {
		i.Description = u.Description
	}
	if u.Price != nil {
		i.Price = *u.Price
	}
	if u.Tax != nil {
		i.Tax = u.Tax
	}
}
