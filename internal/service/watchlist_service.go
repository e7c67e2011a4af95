package service

import (
	"context"
	"errors"
	"strings"

	"finance-backend/internal/domain"
	"finance-backend/internal/repository"
)

// ErrSymbolWatched is returned when adding a symbol already on the watchlist.
var ErrSymbolWatched = errors.New("symbol already on watchlist")

// WatchlistService manages the per-user stock watchlist.
type WatchlistService interface {
	Add(ctx context.Context, userID int64, symbol, companyName string) (*domain.WatchlistItem, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.WatchlistItem, error)
	Remove(ctx context.Context, userID int64, symbol string) error
}

type watchlistService struct {
	items repository.WatchlistRepository
}

func NewWatchlistService(items repository.WatchlistRepository) WatchlistService {
	return &watchlistService{items: items}
}

func (s *watchlistService) Add(ctx context.Context, userID int64, symbol, companyName string) (*domain.WatchlistItem, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}

	item := &domain.WatchlistItem{
		UserID:      userID,
		Symbol:      symbol,
		CompanyName: strings.TrimSpace(companyName),
	}

	if _, err := s.items.Add(ctx, item); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrSymbolWatched
		}
		return nil, err
	}
	return item, nil
}

func (s *watchlistService) ListByUser(ctx context.Context, userID int64) ([]domain.WatchlistItem, error) {
	return s.items.ListByUser(ctx, userID)
}

func (s *watchlistService) Remove(ctx context.Context, userID int64, symbol string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if err := s.items.DeleteBySymbol(ctx, userID, symbol); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
