package handler

import (
	"github.com/Krittamet-rrt/walletapi/internal/adapter/http/dto"
	"github.com/Krittamet-rrt/walletapi/internal/core/ports"
	"github.com/Krittamet-rrt/walletapi/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles read-only transaction endpoints. Transactions
// are created exclusively by the purchase flow.
type TransactionHandler struct {
	ledgerSvc ports.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerSvc ports.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledgerSvc: ledgerSvc}
}

// List handles GET /transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	txns, err := h.ledgerSvc.ListTransactions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, dto.ToTransactionResponse(&txns[i]))
	}
	response.OK(c, out)
}

// Get handles GET /transactions/:transaction_id.
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := pathID(c, "transaction_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	txn, err := h.ledgerSvc.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToTransactionResponse(txn))
}
