package handler

import (
	"github.com/Krittamet-rrt/walletapi/internal/adapter/http/dto"
	"github.com/Krittamet-rrt/walletapi/internal/core/domain"
	"github.com/Krittamet-rrt/walletapi/internal/core/ports"
	"github.com/Krittamet-rrt/walletapi/pkg/apperror"
	"github.com/Krittamet-rrt/walletapi/pkg/response"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles item CRUD endpoints.
type ItemHandler struct {
	ledgerSvc ports.LedgerService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(ledgerSvc ports.LedgerService) *ItemHandler {
	return &ItemHandler{ledgerSvc: ledgerSvc}
}

// Create handles POST /items/:merchant_id. The owning merchant comes from
// the URL and is fixed for the item's lifetime.
func (h *ItemHandler) Create(c *gin.Context) {
	merchantID, err := pathID(c, "merchant_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	item := &domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Tax:         req.Tax,
		MerchantID:  merchantID,
	}

	if err := h.ledgerSvc.CreateItem(c.Request.Context(), item); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToItemResponse(item))
}

// List handles GET /items.
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.ledgerSvc.ListItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.ToItemResponse(&items[i]))
	}
	response.OK(c, out)
}

// Get handles GET /items/:item_id.
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := pathID(c, "item_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.ledgerSvc.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToItemResponse(item))
}

// Update handles PATCH /items/:item_id.
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := pathID(c, "item_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	item, err := h.ledgerSvc.UpdateItem(c.Request.Context(), id, domain.ItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Tax:         req.Tax,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToItemResponse(item))
}

// Delete handles DELETE /items/:item_id.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "item_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.ledgerSvc.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Item deleted"})
}
