package domain

import "time"

// SavingsGoal is a named saving target owned by a single user.
type SavingsGoal struct {
	ID            int64
	UserID        int64
	Name          string
	TargetAmount  float64
	TargetDate    time.Time
	CurrentAmount float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Active reports whether the goal has not been reached yet.
func (g SavingsGoal) Active() bool {
	return g.CurrentAmount < g.TargetAmount
}
