package store

import (
	"context"
	"testing"

	"github.com/gotodo/webapp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreate(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user, err := repo.Create(context.Background(), types.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Greater(t, user.ID, int64(0))
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "a@x.com", found.Email)
	assert.Equal(t, "hash", found.PasswordHash)

	byID, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.Create(context.Background(), types.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), types.User{
		Username:     "alice",
		Email:        "other@x.com",
		PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.Create(context.Background(), types.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), types.User{
		Username:     "bob",
		Email:        "a@x.com",
		PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepositoryNotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}
