package service

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"finance-backend/internal/domain"
	"finance-backend/internal/repository"
	"finance-backend/internal/repository/sqlite"
)

type testEnv struct {
	users     repository.UserRepository
	goals     repository.GoalRepository
	txs       repository.TransactionRepository
	watchlist repository.WatchlistRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	env := &testEnv{
		users:     sqlite.NewUserRepository(db),
		goals:     sqlite.NewGoalRepository(db),
		txs:       sqlite.NewTransactionRepository(db),
		watchlist: sqlite.NewWatchlistRepository(db),
	}

	ctx := context.Background()
	require.NoError(t, env.users.Init(ctx))
	require.NoError(t, env.goals.Init(ctx))
	require.NoError(t, env.txs.Init(ctx))
	require.NoError(t, env.watchlist.Init(ctx))

	return env
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func registerTestUser(t *testing.T, users UserService, email string) *domain.User {
	t.Helper()

	user, err := users.Register(context.Background(), RegisterParams{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return user
}
