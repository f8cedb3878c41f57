package handler

import (
	"github.com/Krittamet-rrt/walletapi/internal/adapter/http/dto"
	"github.com/Krittamet-rrt/walletapi/internal/core/domain"
	"github.com/Krittamet-rrt/walletapi/internal/core/ports"
	"github.com/Krittamet-rrt/walletapi/pkg/apperror"
	"github.com/Krittamet-rrt/walletapi/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MerchantHandler handles merchant CRUD endpoints.
type MerchantHandler struct {
	ledgerSvc ports.LedgerService
}

// NewMerchantHandler creates a new MerchantHandler.
func NewMerchantHandler(ledgerSvc ports.LedgerService) *MerchantHandler {
	return &MerchantHandler{ledgerSvc: ledgerSvc}
}

// Create handles POST /merchants.
func (h *MerchantHandler) Create(c *gin.Context) {
	var req dto.CreateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	m := &domain.Merchant{
		Name:    req.Name,
		Balance: decimal.Zero,
		UserID:  req.UserID,
	}
	if req.Balance != nil {
		m.Balance = *req.Balance
	}

	if err := h.ledgerSvc.CreateMerchant(c.Request.Context(), m); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToMerchantResponse(m))
}

// List handles GET /merchants.
func (h *MerchantHandler) List(c *gin.Context) {
	merchants, err := h.ledgerSvc.ListMerchants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.MerchantResponse, 0, len(merchants))
	for i := range merchants {
		out = append(out, dto.ToMerchantResponse(&merchants[i]))
	}
	response.OK(c, out)
}

// Get handles GET /merchants/:merchant_id.
func (h *MerchantHandler) Get(c *gin.Context) {
	id, err := pathID(c, "merchant_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.ledgerSvc.GetMerchant(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToMerchantResponse(m))
}

// Update handles PATCH /merchants/:merchant_id.
func (h *MerchantHandler) Update(c *gin.Context) {
	id, err := pathID(c, "merchant_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	m, err := h.ledgerSvc.UpdateMerchant(c.Request.Context(), id, domain.MerchantUpdate{
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToMerchantResponse(m))
}

// Delete handles DELETE /merchants/:merchant_id. The merchant's items are
// removed with it.
func (h *MerchantHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "merchant_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.ledgerSvc.DeleteMerchant(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Merchant deleted"})
}
