package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) getDashboard(c *gin.Context) {
	user := currentUser(c)

	summary, err := h.dashboard.Summary(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	goals := make([]goalResponse, len(summary.ActiveGoals))
	for i := range summary.ActiveGoals {
		goals[i] = goalToResponse(summary.ActiveGoals[i])
	}
	items := make([]watchlistItemResponse, len(summary.Watchlist))
	for i := range summary.Watchlist {
		items[i] = watchlistItemToResponse(summary.Watchlist[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"name":  summary.User.Name,
			"email": summary.User.Email,
		},
		"total_savings": summary.TotalSavings,
		"active_goals":  goals,
		"watchlist":     items,
	})
}
