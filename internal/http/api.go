package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"finance-backend/internal/advisor"
	"finance-backend/internal/auth"
	"finance-backend/internal/domain"
	"finance-backend/internal/service"
	"finance-backend/internal/stocks"
)

const (
	userContextKey      = "auth.user"
	requestIDContextKey = "request.id"
	requestIDHeader     = "X-Request-ID"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     service.UserService
	goals     service.GoalService
	txs       service.TransactionService
	watchlist service.WatchlistService
	dashboard service.DashboardService
	stocks    *stocks.Client
	advisor   *advisor.Client
	tokens    *auth.Tokens
	logger    *logrus.Logger
}

func NewHandler(
	users service.UserService,
	goals service.GoalService,
	txs service.TransactionService,
	watchlist service.WatchlistService,
	dashboard service.DashboardService,
	stocksClient *stocks.Client,
	advisorClient *advisor.Client,
	tokens *auth.Tokens,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		users:     users,
		goals:     goals,
		txs:       txs,
		watchlist: watchlist,
		dashboard: dashboard,
		stocks:    stocksClient,
		advisor:   advisorClient,
		tokens:    tokens,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(), requestIDMiddleware())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	router.POST("/users", h.register)
	router.POST("/user/login", h.login)

	authed := router.Group("", h.requireAuth)
	{
		authed.GET("/profile", h.profile)
		authed.PUT("/users/:id/savings", h.updateSavings)

		authed.POST("/savings/create", h.createGoal)
		authed.PATCH("/savings/update/:goal_id", h.updateGoalProgress)
		authed.DELETE("/savings/delete/:goal_id", h.deleteGoal)
		authed.GET("/savings/goals", h.listGoals)

		authed.POST("/transactions", h.createTransaction)
		authed.GET("/transactions", h.listTransactions)

		authed.POST("/stocks/watchlist/add", h.addToWatchlist)
		authed.GET("/stocks/watchlist", h.getWatchlist)
		authed.DELETE("/stocks/watchlist/:symbol", h.removeFromWatchlist)

		authed.GET("/dashboard", h.getDashboard)
		authed.GET("/stock/:symbol", h.getStockQuote)
		authed.POST("/ai/chat", h.chat)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDContextKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// requireAuth verifies the bearer token and resolves the embedded identity to
// a live user. Every failure mode collapses to the same 401 so callers cannot
// distinguish a forged token from a deleted account; the cause goes to logs.
func (h *Handler) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		h.authLog(c).Debug("missing or malformed authorization header")
		unauthenticated(c)
		return
	}

	userID, err := h.tokens.Verify(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		h.authLog(c).Warnf("token rejected: %v", err)
		unauthenticated(c)
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.authLog(c).Warnf("token subject %d did not resolve: %v", userID, err)
		unauthenticated(c)
		return
	}

	c.Set(userContextKey, user)
	c.Next()
}

func (h *Handler) authLog(c *gin.Context) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDContextKey),
		"path":       c.FullPath(),
	})
}

func unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
}

// currentUser returns the identity resolved by requireAuth. Handlers behind
// the middleware must use it and never re-derive identity themselves.
func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
