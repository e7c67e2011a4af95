package repository

import (
	"context"

	"finance-backend/internal/domain"
)

// TransactionRepository defines persistence operations for the activity log.
type TransactionRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, tx *domain.Transaction) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
}
