package repository

import (
	"context"

	"finance-backend/internal/domain"
)

// GoalRepository defines persistence operations for savings goals. All
// lookups are scoped by owner so one user can never touch another's goals.
type GoalRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, goal *domain.SavingsGoal) (int64, error)
	GetByID(ctx context.Context, id, userID int64) (*domain.SavingsGoal, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.SavingsGoal, error)
	AddProgress(ctx context.Context, id, userID int64, amount float64) error
	Delete(ctx context.Context, id, userID int64) error
}
