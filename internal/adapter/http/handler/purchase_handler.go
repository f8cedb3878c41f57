package handler

import (
	"fmt"
	"strconv"

	"github.com/Krittamet-rrt/walletapi/internal/adapter/http/dto"
	"github.com/Krittamet-rrt/walletapi/internal/core/ports"
	"github.com/Krittamet-rrt/walletapi/pkg/apperror"
	"github.com/Krittamet-rrt/walletapi/pkg/response"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles the buy-item endpoint.
type PurchaseHandler struct {
	purchaseSvc ports.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseSvc ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseSvc: purchaseSvc}
}

// BuyItem handles POST /buy_item?item_id=..&wallet_id=..
func (h *PurchaseHandler) BuyItem(c *gin.Context) {
	itemID, err := queryID(c, "item_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	walletID, err := queryID(c, "wallet_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.purchaseSvc.BuyItem(c.Request.Context(), itemID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PurchaseResponse{
		Message: fmt.Sprintf("Successfully bought %s", result.Item.Name),
		Amount:  result.WalletBalance,
		Item: dto.PurchaseItemInfo{
			ItemID: result.Item.ID,
			Name:   result.Item.Name,
			Price:  result.Item.Price,
		},
		Merchant: dto.PurchaseMerchantInfo{
			Name: result.Merchant.Name,
		},
	})
}

// queryID parses a required int64 query parameter.
func queryID(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, apperror.Validation(fmt.Sprintf("missing required query parameter: %s", name))
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.Validation(fmt.Sprintf("invalid %s: must be a positive integer", name))
	}
	return id, nil
}

// pathID parses a required int64 path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.Validation(fmt.Sprintf("invalid %s: must be a positive integer", name))
	}
	return id, nil
}
