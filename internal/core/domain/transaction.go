package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the immutable audit record of one completed purchase.
// Rows are created only by the purchase engine and never mutated.
type Transaction struct {
	ID              int64           `json:"id"`
	Price           decimal.Decimal `json:"price"`
	WalletID        int64           `json:"wallet_id"`
	ItemID          int64           `json:"item_id"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// NewPurchaseTransaction builds the audit record for a completed purchase.
func NewPurchaseTransaction(item *Item, walletID int64, at time.Time) *Transaction {
	return &Transaction{
		Price:           item.Price,
		WalletID:        walletID,
		ItemID:          item.ID,
		Description:     fmt.Sprintf("Bought %s", item.Name),
		TransactionDate: at.UTC(),
	}
}
