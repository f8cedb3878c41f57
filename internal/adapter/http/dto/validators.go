package dto

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	errNegativeBalance = errors.New("balance must not be negative")
	errNegativePrice   = errors.New("price must not be negative")
	errNegativeTax     = errors.New("tax must not be negative")
)

// negative reports whether an optional decimal is present and below zero.
func negative(d *decimal.Decimal) bool {
	return d != nil && d.IsNegative()
}

// Validate checks amount constraints the binding tags cannot express.
func (r CreateWalletRequest) Validate() error {
	if negative(r.Balance) {
		return errNegativeBalance
	}
	return nil
}

// Validate checks amount constraints the binding tags cannot express.
func (r UpdateWalletRequest) Validate() error {
	if negative(r.Balance) {
		return errNegativeBalance
	}
	return nil
}

// Validate checks amount constraints the binding tags cannot express.
func (r CreateMerchantRequest) Validate() error {
	if negative(r.Balance) {
		return errNegativeBalance
	}
	return nil
}

// Validate checks amount constraints the binding tags cannot express.
func (r UpdateMerchantRequest) Validate() error {
	if negative(r.Balance) {
		return errNegativeBalance
	}
	return nil
}

// Validate checks amount constraints the binding tags cannot express.
func (r CreateItemRequest) Validate() error {
	if r.Price.IsNegative() {
		return errNegativePrice
	}
	if negative(r.Tax) {
		return errNegativeTax
	}
	return nil
}

// Validate checks amount constraints the binding tags cannot express.
func (r UpdateItemRequest) Validate() error {
	if negative(r.Price) {
		return errNegativePrice
	}
	if negative(r.Tax) {
		return errNegativeTax
	}
	return nil
}
