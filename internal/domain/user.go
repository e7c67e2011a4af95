package domain

import "time"

// User represents a registered account. PasswordHash is opaque and must only
// ever be checked through the auth package, never compared directly.
type User struct {
	ID             int64
	Name           string
	Email          string
	PasswordHash   string
	Savings        float64
	SavingsGoal    float64
	CurrentSavings float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
