package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finance-backend/internal/domain"
	"finance-backend/internal/repository"
)

const createGoalsTable = `
CREATE TABLE IF NOT EXISTS savings_goals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	goal_name TEXT NOT NULL,
	target_amount REAL NOT NULL,
	target_date DATETIME NOT NULL,
	current_amount REAL NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type GoalRepository struct {
	db *sql.DB
}

func NewGoalRepository(db *sql.DB) repository.GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createGoalsTable); err != nil {
		return fmt.Errorf("create savings_goals table: %w", err)
	}
	return nil
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.SavingsGoal) (int64, error) {
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO savings_goals (user_id, goal_name, target_amount, target_date, current_amount, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.TargetDate,
		goal.CurrentAmount,
		goal.CreatedAt,
		goal.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert savings goal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("savings goal last insert id: %w", err)
	}
	goal.ID = id
	return id, nil
}

func (r *GoalRepository) GetByID(ctx context.Context, id, userID int64) (*domain.SavingsGoal, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, goal_name, target_amount, target_date, current_amount, created_at, updated_at
FROM savings_goals
WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	return scanGoal(row)
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SavingsGoal, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, goal_name, target_amount, target_date, current_amount, created_at, updated_at
FROM savings_goals
WHERE user_id = ?
ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list savings goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.SavingsGoal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate savings goals: %w", err)
	}
	return goals, nil
}

func (r *GoalRepository) AddProgress(ctx context.Context, id, userID int64, amount float64) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE savings_goals
SET current_amount = current_amount + ?, updated_at = ?
WHERE id = ? AND user_id = ?`,
		amount,
		time.Now().UTC(),
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("update goal progress: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("goal progress rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("savings goal %w", repository.ErrNotFound)
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM savings_goals WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("delete savings goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete goal rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("savings goal %w", repository.ErrNotFound)
	}
	return nil
}

func scanGoal(row interface {
	Scan(dest ...any) error
}) (*domain.SavingsGoal, error) {
	var goal domain.SavingsGoal
	if err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.TargetDate,
		&goal.CurrentAmount,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("savings goal %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan savings goal: %w", err)
	}
	return &goal, nil
}
