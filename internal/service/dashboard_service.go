package service

import (
	"context"

	"finance-backend/internal/domain"
	"finance-backend/internal/repository"
)

// Dashboard aggregates a user's goals and watchlist for the overview screen.
type Dashboard struct {
	User         *domain.User
	TotalSavings float64
	ActiveGoals  []domain.SavingsGoal
	Watchlist    []domain.WatchlistItem
}

type DashboardService interface {
	Summary(ctx context.Context, user *domain.User) (*Dashboard, error)
}

type dashboardService struct {
	goals     repository.GoalRepository
	watchlist repository.WatchlistRepository
}

func NewDashboardService(goals repository.GoalRepository, watchlist repository.WatchlistRepository) DashboardService {
	return &dashboardService{
		goals:     goals,
		watchlist: watchlist,
	}
}

func (s *dashboardService) Summary(ctx context.Context, user *domain.User) (*Dashboard, error) {
	goals, err := s.goals.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var totalSaved float64
	var active []domain.SavingsGoal
	for _, goal := range goals {
		totalSaved += goal.CurrentAmount
		if goal.Active() {
			active = append(active, goal)
		}
	}

	items, err := s.watchlist.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		User:         user,
		TotalSavings: totalSaved,
		ActiveGoals:  active,
		Watchlist:    items,
	}, nil
}
