package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finance-backend/internal/domain"
	"finance-backend/internal/service"
)

type createTransactionRequest struct {
	Type          string   `json:"type" binding:"required"`
	Amount        *float64 `json:"amount"`
	Description   string   `json:"description"`
	SavingsGoalID *int64   `json:"savings_goal_id"`
}

type transactionResponse struct {
	ID            int64    `json:"id"`
	Type          string   `json:"type"`
	Amount        *float64 `json:"amount,omitempty"`
	Description   string   `json:"description"`
	SavingsGoalID *int64   `json:"savings_goal_id,omitempty"`
	Timestamp     string   `json:"timestamp"`
}

func (h *Handler) createTransaction(c *gin.Context) {
	user := currentUser(c)

	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.txs.Create(c.Request.Context(), user.ID, service.CreateTransactionParams{
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		SavingsGoalID: req.SavingsGoalID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, transactionToResponse(*tx))
}

func (h *Handler) listTransactions(c *gin.Context) {
	user := currentUser(c)

	txs, err := h.txs.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]transactionResponse, len(txs))
	for i := range txs {
		resp[i] = transactionToResponse(txs[i])
	}
	c.JSON(http.StatusOK, resp)
}

func transactionToResponse(tx domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		Description:   tx.Description,
		SavingsGoalID: tx.SavingsGoalID,
		Timestamp:     tx.Timestamp.Format(time.RFC3339),
	}
}
