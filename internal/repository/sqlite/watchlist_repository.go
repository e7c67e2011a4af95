package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"finance-backend/internal/domain"
	"finance-backend/internal/repository"
)

const createWatchlistTable = `
CREATE TABLE IF NOT EXISTS watchlist (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	symbol TEXT NOT NULL,
	company_name TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	UNIQUE (user_id, symbol)
);
`

type WatchlistRepository struct {
	db *sql.DB
}

func NewWatchlistRepository(db *sql.DB) repository.WatchlistRepository {
	return &WatchlistRepository{db: db}
}

func (r *WatchlistRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createWatchlistTable); err != nil {
		return fmt.Errorf("create watchlist table: %w", err)
	}
	return nil
}

func (r *WatchlistRepository) Add(ctx context.Context, item *domain.WatchlistItem) (int64, error) {
	item.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO watchlist (user_id, symbol, company_name, created_at)
VALUES (?, ?, ?, ?)`,
		item.UserID,
		item.Symbol,
		item.CompanyName,
		item.CreatedAt,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, fmt.Errorf("watchlist item %w", repository.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("insert watchlist item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("watchlist last insert id: %w", err)
	}
	item.ID = id
	return id, nil
}

func (r *WatchlistRepository) ListByUser(ctx context.Context, userID int64) ([]domain.WatchlistItem, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, symbol, company_name, created_at
FROM watchlist
WHERE user_id = ?
ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	defer rows.Close()

	var items []domain.WatchlistItem
	for rows.Next() {
		var item domain.WatchlistItem
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Symbol,
			&item.CompanyName,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan watchlist item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate watchlist: %w", err)
	}
	return items, nil
}

func (r *WatchlistRepository) DeleteBySymbol(ctx context.Context, userID int64, symbol string) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM watchlist WHERE user_id = ? AND symbol = ?`,
		userID,
		symbol,
	)
	if err != nil {
		return fmt.Errorf("delete watchlist item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete watchlist rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("watchlist item %w", repository.ErrNotFound)
	}
	return nil
}
