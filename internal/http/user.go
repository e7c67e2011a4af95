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

type registerRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required"`
	Savings        float64 `json:"savings"`
	SavingsGoal    float64 `json:"savings_goal"`
	CurrentSavings float64 `json:"current_savings"`
}

// loginRequest accepts both the JSON body and the OAuth2-style form used by
// the mobile client (email travels in the username field there).
type loginRequest struct {
	Email    string `json:"email" form:"username"`
	Password string `json:"password" form:"password"`
}

type userResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Savings        float64 `json:"savings"`
	SavingsGoal    float64 `json:"savings_goal"`
	CurrentSavings float64 `json:"current_savings"`
	CreatedAt      string  `json:"created_at"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.RegisterParams{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Savings:        req.Savings,
		SavingsGoal:    req.SavingsGoal,
		CurrentSavings: req.CurrentSavings,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, userToResponse(user))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		h.authLog(c).Errorf("authenticate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.authLog(c).Errorf("issue token for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (h *Handler) profile(c *gin.Context) {
	user := currentUser(c)

	c.JSON(http.StatusOK, gin.H{
		"name":    user.Name,
		"email":   user.Email,
		"savings": user.Savings,
		"goal":    user.SavingsGoal,
	})
}

func (h *Handler) updateSavings(c *gin.Context) {
	user := currentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	if id != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot update another user's savings"})
		return
	}

	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	updated, err := h.users.UpdateCurrentSavings(c.Request.Context(), user.ID, amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Savings updated",
		"current_savings": updated.CurrentSavings,
	})
}

func userToResponse(user *domain.User) userResponse {
	return userResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Savings:        user.Savings,
		SavingsGoal:    user.SavingsGoal,
		CurrentSavings: user.CurrentSavings,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}
