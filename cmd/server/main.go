package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"finance-backend/internal/advisor"
	"finance-backend/internal/auth"
	"finance-backend/internal/config"
	apphttp "finance-backend/internal/http"
	"finance-backend/internal/repository/sqlite"
	"finance-backend/internal/service"
	"finance-backend/internal/stocks"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if cfg.Auth.Secret == config.DefaultAuthSecret {
		logger.Warn("auth secret is the built-in development fallback; set FINANCE_AUTH_SECRET before deploying")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	goalRepo := sqlite.NewGoalRepository(db)
	txRepo := sqlite.NewTransactionRepository(db)
	watchlistRepo := sqlite.NewWatchlistRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := goalRepo.Init(ctx); err != nil {
		logger.Fatalf("init goal repository: %v", err)
	}
	if err := txRepo.Init(ctx); err != nil {
		logger.Fatalf("init transaction repository: %v", err)
	}
	if err := watchlistRepo.Init(ctx); err != nil {
		logger.Fatalf("init watchlist repository: %v", err)
	}

	userService := service.NewUserService(userRepo)
	txService := service.NewTransactionService(txRepo)
	goalService := service.NewGoalService(goalRepo, txService, logger)
	watchlistService := service.NewWatchlistService(watchlistRepo)
	dashboardService := service.NewDashboardService(goalRepo, watchlistRepo)

	stocksClient := stocks.NewClient(cfg.Stocks.BaseURL, cfg.Stocks.APIKey)
	advisorClient := advisor.NewClient(cfg.Advisor.BaseURL, cfg.Advisor.APIKey, cfg.Advisor.Model)

	tokens := auth.NewTokens(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		userService,
		goalService,
		txService,
		watchlistService,
		dashboardService,
		stocksClient,
		advisorClient,
		tokens,
		logger,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
