package service

import (
	"context"
	"errors"
	"strings"

	"finance-backend/internal/auth"
	"finance-backend/internal/domain"
	"finance-backend/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering with an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotFound is returned when a requested record does not exist for the caller.
	ErrNotFound = errors.New("not found")
)

// RegisterParams carries the fields accepted at account creation.
type RegisterParams struct {
	Name           string
	Email          string
	Password       string
	Savings        float64
	SavingsGoal    float64
	CurrentSavings float64
}

// UserService describes user lifecycle operations. GetByID doubles as the
// identity resolver behind the auth middleware: a verified token subject is
// only trusted once it maps to a live user row.
type UserService interface {
	Register(ctx context.Context, p RegisterParams) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateCurrentSavings(ctx context.Context, id int64, amount float64) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, p RegisterParams) (*domain.User, error) {
	name := strings.TrimSpace(p.Name)
	email := NormalizeEmail(p.Email)

	if name == "" {
		return nil, errors.New("name is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	if p.Password == "" {
		return nil, errors.New("password is required")
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:           name,
		Email:          email,
		PasswordHash:   hash,
		Savings:        p.Savings,
		SavingsGoal:    p.SavingsGoal,
		CurrentSavings: p.CurrentSavings,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return sanitizeUser(user), nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) UpdateCurrentSavings(ctx context.Context, id int64, amount float64) (*domain.User, error) {
	if err := s.users.UpdateCurrentSavings(ctx, id, amount); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clean := *user
	clean.PasswordHash = ""
	return &clean
}
