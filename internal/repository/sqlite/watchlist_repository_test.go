package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-backend/internal/domain"
	"finance-backend/internal/repository"
)

func TestWatchlistRepository_AddListDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "a@x.com")
	other := createTestUser(t, db, "b@x.com")

	item := &domain.WatchlistItem{UserID: user.ID, Symbol: "AAPL", CompanyName: "Apple Inc"}
	_, err := repo.Add(ctx, item)
	require.NoError(t, err)

	_, err = repo.Add(ctx, &domain.WatchlistItem{UserID: other.ID, Symbol: "AAPL"})
	require.NoError(t, err, "same symbol for a different user is allowed")

	items, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "AAPL", items[0].Symbol)

	require.NoError(t, repo.DeleteBySymbol(ctx, user.ID, "AAPL"))

	items, err = repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// the other user's entry is untouched
	items, err = repo.ListByUser(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestWatchlistRepository_DuplicateSymbol(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "a@x.com")

	_, err := repo.Add(ctx, &domain.WatchlistItem{UserID: user.ID, Symbol: "AAPL"})
	require.NoError(t, err)

	_, err = repo.Add(ctx, &domain.WatchlistItem{UserID: user.ID, Symbol: "AAPL"})
	require.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestWatchlistRepository_DeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "a@x.com")

	err := repo.DeleteBySymbol(ctx, user.ID, "TSLA")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
