package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-backend/internal/domain"
	"finance-backend/internal/repository"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Name:           "Yara",
		Email:          "a@x.com",
		PasswordHash:   "hash",
		Savings:        100,
		SavingsGoal:    1000,
		CurrentSavings: 50,
	}
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.Positive(t, id)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Yara", byID.Name)
	assert.Equal(t, 50.0, byID.CurrentSavings)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "a@x.com")

	_, err := repo.Create(ctx, &domain.User{Name: "Other", Email: "a@x.com", PasswordHash: "y"})
	require.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestUserRepository_GetMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 12345)
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_UpdateCurrentSavings(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "a@x.com")

	require.NoError(t, repo.UpdateCurrentSavings(ctx, user.ID, 250))

	updated, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.CurrentSavings)

	err = repo.UpdateCurrentSavings(ctx, 9999, 1)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "a@x.com")

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.GetByID(ctx, user.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, user.ID), repository.ErrNotFound)
}
