package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"finance-backend/internal/domain"
	"finance-backend/internal/repository"
)

// GoalService manages savings goals. Goal mutations append to the activity
// log; a failed log write is reported but never fails the mutation itself.
type GoalService interface {
	Create(ctx context.Context, userID int64, name string, targetAmount float64, targetDate time.Time) (*domain.SavingsGoal, error)
	AddProgress(ctx context.Context, userID, goalID int64, amount float64) (*domain.SavingsGoal, error)
	Delete(ctx context.Context, userID, goalID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.SavingsGoal, error)
}

type goalService struct {
	goals  repository.GoalRepository
	txlog  TransactionService
	logger *logrus.Logger
}

func NewGoalService(goals repository.GoalRepository, txlog TransactionService, logger *logrus.Logger) GoalService {
	return &goalService{
		goals:  goals,
		txlog:  txlog,
		logger: logger,
	}
}

func (s *goalService) Create(ctx context.Context, userID int64, name string, targetAmount float64, targetDate time.Time) (*domain.SavingsGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("goal name is required")
	}
	if targetAmount <= 0 {
		return nil, errors.New("target amount must be positive")
	}
	if targetDate.IsZero() {
		return nil, errors.New("target date is required")
	}

	goal := &domain.SavingsGoal{
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
	}

	if _, err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) AddProgress(ctx context.Context, userID, goalID int64, amount float64) (*domain.SavingsGoal, error) {
	if err := s.goals.AddProgress(ctx, goalID, userID, amount); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	goal, err := s.goals.GetByID(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	s.log(ctx, userID, domain.TransactionProgressUpdate, &amount, "Updated progress for savings goal", &goal.ID)
	return goal, nil
}

func (s *goalService) Delete(ctx context.Context, userID, goalID int64) error {
	if err := s.goals.Delete(ctx, goalID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.log(ctx, userID, domain.TransactionGoalDeleted, nil, "Deleted savings goal", &goalID)
	return nil
}

func (s *goalService) ListByUser(ctx context.Context, userID int64) ([]domain.SavingsGoal, error) {
	return s.goals.ListByUser(ctx, userID)
}

func (s *goalService) log(ctx context.Context, userID int64, txType domain.TransactionType, amount *float64, description string, goalID *int64) {
	if err := s.txlog.Log(ctx, userID, txType, amount, description, goalID); err != nil && s.logger != nil {
		s.logger.Warnf("log %s transaction for user %d: %v", txType, userID, err)
	}
}
