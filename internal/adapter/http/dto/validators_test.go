package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func TestCreateWalletRequest_Validate(t *testing.T) {
	assert.NoError(t, CreateWalletRequest{Name: "savings"}.Validate())
	assert.NoError(t, CreateWalletRequest{Name: "savings", Balance: dp("0.00")}.Validate())
	assert.Error(t, CreateWalletRequest{Name: "savings", Balance: dp("-1.00")}.Validate())
}

func TestCreateItemRequest_Validate(t *testing.T) {
	assert.NoError(t, CreateItemRequest{Name: "apple", Price: d("30.00")}.Validate())
	assert.NoError(t, CreateItemRequest{Name: "free", Price: d("0.00")}.Validate())
	assert.Error(t, CreateItemRequest{Name: "apple", Price: d("-0.01")}.Validate())
	assert.Error(t, CreateItemRequest{Name: "apple", Price: d("1.00"), Tax: dp("-0.10")}.Validate())
}

func TestUpdateItemRequest_Validate(t *testing.T) {
	assert.NoError(t, UpdateItemRequest{}.Validate())
	assert.NoError(t, UpdateItemRequest{Price: dp("5.00")}.Validate())
	assert.Error(t, UpdateItemRequest{Price: dp("-5.00")}.Validate())
}
