package service

import (
	"context"
	"errors"
	"strings"

	"finance-backend/internal/domain"
	"finance-backend/internal/repository"
)

// CreateTransactionParams carries the fields accepted when logging an entry
// directly through the API.
type CreateTransactionParams struct {
	Type          domain.TransactionType
	Amount        *float64
	Description   string
	SavingsGoalID *int64
}

// TransactionService records and lists activity-log entries. Log is the
// internal hook used by goal mutations.
type TransactionService interface {
	Create(ctx context.Context, userID int64, p CreateTransactionParams) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
	Log(ctx context.Context, userID int64, txType domain.TransactionType, amount *float64, description string, goalID *int64) error
}

type transactionService struct {
	txs repository.TransactionRepository
}

func NewTransactionService(txs repository.TransactionRepository) TransactionService {
	return &transactionService{txs: txs}
}

func (s *transactionService) Create(ctx context.Context, userID int64, p CreateTransactionParams) (*domain.Transaction, error) {
	if strings.TrimSpace(string(p.Type)) == "" {
		return nil, errors.New("transaction type is required")
	}

	tx := &domain.Transaction{
		UserID:        userID,
		SavingsGoalID: p.SavingsGoalID,
		Type:          p.Type,
		Amount:        p.Amount,
		Description:   p.Description,
	}

	if _, err := s.txs.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.txs.ListByUser(ctx, userID)
}

func (s *transactionService) Log(ctx context.Context, userID int64, txType domain.TransactionType, amount *float64, description string, goalID *int64) error {
	tx := &domain.Transaction{
		UserID:        userID,
		SavingsGoalID: goalID,
		Type:          txType,
		Amount:        amount,
		Description:   description,
	}
	_, err := s.txs.Create(ctx, tx)
	return err
}
