package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"finance-backend/internal/domain"
	"finance-backend/internal/service"
)

type createGoalRequest struct {
	GoalName     string  `json:"goal_name" binding:"required"`
	TargetAmount float64 `json:"target_amount" binding:"required"`
	TargetDate   string  `json:"target_date" binding:"required"`
}

type goalResponse struct {
	ID            int64   `json:"id"`
	GoalName      string  `json:"goal_name"`
	TargetAmount  float64 `json:"target_amount"`
	TargetDate    string  `json:"target_date"`
	CurrentAmount float64 `json:"current_amount"`
	CreatedAt     string  `json:"created_at"`
}

func (h *Handler) createGoal(c *gin.Context) {
	user := currentUser(c)

	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_date must be YYYY-MM-DD"})
		return
	}

	goal, err := h.goals.Create(c.Request.Context(), user.ID, req.GoalName, req.TargetAmount, targetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Savings goal created",
		"goal":    goalToResponse(*goal),
	})
}

func (h *Handler) updateGoalProgress(c *gin.Context) {
	user := currentUser(c)

	goalID, err := strconv.ParseInt(c.Param("goal_id"), 10, 64)
	if err != nil || goalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	goal, err := h.goals.AddProgress(c.Request.Context(), user.ID, goalID, amount)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Progress tracked.",
		"goal":    goalToResponse(*goal),
	})
}

func (h *Handler) deleteGoal(c *gin.Context) {
	user := currentUser(c)

	goalID, err := strconv.ParseInt(c.Param("goal_id"), 10, 64)
	if err != nil || goalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	if err := h.goals.Delete(c.Request.Context(), user.ID, goalID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Savings goal deleted"})
}

func (h *Handler) listGoals(c *gin.Context) {
	user := currentUser(c)

	goals, err := h.goals.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]goalResponse, len(goals))
	for i := range goals {
		resp[i] = goalToResponse(goals[i])
	}
	c.JSON(http.StatusOK, resp)
}

func goalToResponse(goal domain.SavingsGoal) goalResponse {
	return goalResponse{
		ID:            goal.ID,
		GoalName:      goal.Name,
		TargetAmount:  goal.TargetAmount,
		TargetDate:    goal.TargetDate.Format("2006-01-02"),
		CurrentAmount: goal.CurrentAmount,
		CreatedAt:     goal.CreatedAt.Format(time.RFC3339),
	}
}
