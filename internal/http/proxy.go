package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *Handler) getStockQuote(c *gin.Context) {
	if h.stocks == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stock service not configured"})
		return
	}

	quote, err := h.stocks.GetQuote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		h.authLog(c).Warnf("stock quote: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "stock quote unavailable"})
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *Handler) chat(c *gin.Context) {
	if h.advisor == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "advisor service not configured"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.advisor.Advise(c.Request.Context(), req.Message)
	if err != nil {
		h.authLog(c).Warnf("advisor chat: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "advisor unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
