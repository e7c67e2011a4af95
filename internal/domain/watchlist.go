package domain

import "time"

// WatchlistItem is a stock symbol a user follows.
type WatchlistItem struct {
	ID          int64
	UserID      int64
	Symbol      string
	CompanyName string
	CreatedAt   time.Time
}
