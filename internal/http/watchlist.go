package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-backend/internal/domain"
	"finance-backend/internal/service"
)

type addWatchlistRequest struct {
	Symbol      string `json:"symbol" binding:"required"`
	CompanyName string `json:"company_name"`
}

type watchlistItemResponse struct {
	ID          int64  `json:"id"`
	Symbol      string `json:"symbol"`
	CompanyName string `json:"company_name"`
}

func (h *Handler) addToWatchlist(c *gin.Context) {
	user := currentUser(c)

	var req addWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.watchlist.Add(c.Request.Context(), user.ID, req.Symbol, req.CompanyName)
	if err != nil {
		if errors.Is(err, service.ErrSymbolWatched) {
			c.JSON(http.StatusConflict, gin.H{"error": "symbol already on watchlist"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Added to watchlist",
		"item":    watchlistItemToResponse(*item),
	})
}

func (h *Handler) getWatchlist(c *gin.Context) {
	user := currentUser(c)

	items, err := h.watchlist.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]watchlistItemResponse, len(items))
	for i := range items {
		resp[i] = watchlistItemToResponse(items[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) removeFromWatchlist(c *gin.Context) {
	user := currentUser(c)

	if err := h.watchlist.Remove(c.Request.Context(), user.ID, c.Param("symbol")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from watchlist"})
}

func watchlistItemToResponse(item domain.WatchlistItem) watchlistItemResponse {
	return watchlistItemResponse{
		ID:          item.ID,
		Symbol:      item.Symbol,
		CompanyName: item.CompanyName,
	}
}
