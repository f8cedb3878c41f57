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

// WalletHandler handles wallet CRUD endpoints.
type WalletHandler struct {
	ledgerSvc ports.LedgerService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService) *WalletHandler {
	return &WalletHandler{ledgerSvc: ledgerSvc}
}

// Create handles POST /wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	w := &domain.Wallet{
		Name:    req.Name,
		Balance: decimal.Zero,
		UserID:  req.UserID,
	}
	if req.Balance != nil {
		w.Balance = *req.Balance
	}

	if err := h.ledgerSvc.CreateWallet(c.Request.Context(), w); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToWalletResponse(w))
}

// Get handles GET /wallets/:wallet_id.
func (h *WalletHandler) Get(c *gin.Context) {
	id, err := pathID(c, "wallet_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	w, err := h.ledgerSvc.GetWallet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToWalletResponse(w))
}

// Update handles PATCH /wallets/:wallet_id.
func (h *WalletHandler) Update(c *gin.Context) {
	id, err := pathID(c, "wallet_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	w, err := h.ledgerSvc.UpdateWallet(c.Request.Context(), id, domain.WalletUpdate{
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToWalletResponse(w))
}

// Delete handles DELETE /wallets/:wallet_id.
func (h *WalletHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "wallet_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.ledgerSvc.DeleteWallet(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Wallet deleted"})
}
