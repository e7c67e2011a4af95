package domain

import "time"

type TransactionType string

const (
	TransactionDeposit        TransactionType = "deposit"
	TransactionWithdrawal     TransactionType = "withdrawal"
	TransactionProgressUpdate TransactionType = "progress_update"
	TransactionGoalDeleted    TransactionType = "delete"
)

// Transaction is one entry in a user's activity log. Amount and SavingsGoalID
// are optional; goal deletions for example carry no amount.
type Transaction struct {
	ID            int64
	UserID        int64
	SavingsGoalID *int64
	Type          TransactionType
	Amount        *float64
	Description   string
	Timestamp     time.Time
}
