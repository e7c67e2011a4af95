package repository

import (
	"context"

	"finance-backend/internal/domain"
)

// WatchlistRepository defines persistence operations for watched symbols.
type WatchlistRepository interface {
	Init(ctx context.Context) error
	Add(ctx context.Context, item *domain.WatchlistItem) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.WatchlistItem, error)
	DeleteBySymbol(ctx context.Context, userID int64, symbol string) error
}
