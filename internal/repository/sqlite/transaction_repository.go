package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"finance-backend/internal/domain"
	"finance-backend/internal/repository"
)

const createTransactionsTable = `
CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	savings_goal_id INTEGER NULL,
	type TEXT NOT NULL,
	amount REAL NULL,
	description TEXT NOT NULL DEFAULT '',
	timestamp DATETIME NOT NULL
);
`

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTransactionsTable); err != nil {
		return fmt.Errorf("create transactions table: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) (int64, error) {
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO transactions (user_id, savings_goal_id, type, amount, description, timestamp)
VALUES (?, ?, ?, ?, ?, ?)`,
		tx.UserID,
		tx.SavingsGoalID,
		string(tx.Type),
		tx.Amount,
		tx.Description,
		tx.Timestamp,
	)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("transaction last insert id: %w", err)
	}
	tx.ID = id
	return id, nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, savings_goal_id, type, amount, description, timestamp
FROM transactions
WHERE user_id = ?
ORDER BY timestamp DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var txType string
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.SavingsGoalID,
			&txType,
			&tx.Amount,
			&tx.Description,
			&tx.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Type = domain.TransactionType(txType)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}
