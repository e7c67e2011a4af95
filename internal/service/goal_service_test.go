package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-backend/internal/domain"
)

func newGoalEnv(t *testing.T) (GoalService, TransactionService, *domain.User) {
	t.Helper()

	env := newTestEnv(t)
	users := NewUserService(env.users)
	txs := NewTransactionService(env.txs)
	goals := NewGoalService(env.goals, txs, testLogger())
	user := registerTestUser(t, users, "a@x.com")
	return goals, txs, user
}

func TestGoalService_Create(t *testing.T) {
	goals, _, user := newGoalEnv(t)
	ctx := context.Background()

	goal, err := goals.Create(ctx, user.ID, "Car", 5000, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Positive(t, goal.ID)
	assert.Equal(t, 0.0, goal.CurrentAmount)

	_, err = goals.Create(ctx, user.ID, "", 5000, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)

	_, err = goals.Create(ctx, user.ID, "Car", -1, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
}

func TestGoalService_AddProgressLogsTransaction(t *testing.T) {
	goals, txs, user := newGoalEnv(t)
	ctx := context.Background()

	goal, err := goals.Create(ctx, user.ID, "Car", 5000, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	updated, err := goals.AddProgress(ctx, user.ID, goal.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.CurrentAmount)

	logged, err := txs.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Equal(t, domain.TransactionProgressUpdate, logged[0].Type)
	require.NotNil(t, logged[0].Amount)
	assert.Equal(t, 150.0, *logged[0].Amount)
	require.NotNil(t, logged[0].SavingsGoalID)
	assert.Equal(t, goal.ID, *logged[0].SavingsGoalID)
}

func TestGoalService_DeleteLogsTransaction(t *testing.T) {
	goals, txs, user := newGoalEnv(t)
	ctx := context.Background()

	goal, err := goals.Create(ctx, user.ID, "Car", 5000, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, goals.Delete(ctx, user.ID, goal.ID))

	logged, err := txs.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Equal(t, domain.TransactionGoalDeleted, logged[0].Type)
	assert.Nil(t, logged[0].Amount)
}

func TestGoalService_MissingGoal(t *testing.T) {
	goals, _, user := newGoalEnv(t)
	ctx := context.Background()

	_, err := goals.AddProgress(ctx, user.ID, 9999, 10)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, goals.Delete(ctx, user.ID, 9999), ErrNotFound)
}
