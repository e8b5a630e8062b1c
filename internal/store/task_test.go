package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/gotodo/webapp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, repo *UserRepository, username string) types.User {
	t.Helper()
	user, err := repo.Create(context.Background(), types.User{
		Username:     username,
		Email:        username + "@x.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}

func TestTaskRepositoryCreate(t *testing.T) {
	conn := setupTestDB(t)
	user := createTestUser(t, NewUserRepository(conn), "alice")
	repo := NewTaskRepository(conn)

	task, err := repo.Create(context.Background(), types.Task{
		UserID:      user.ID,
		Title:       "Buy milk",
		Description: "2 liters",
		Priority:    types.PriorityHigh,
		Status:      types.StatusPending,
	})
	require.NoError(t, err)
	assert.Greater(t, task.ID, int64(0))

	tasks, err := repo.ListRecentByUser(context.Background(), user.ID, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, "2 liters", tasks[0].Description)
	assert.Equal(t, types.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, types.StatusPending, tasks[0].Status)
	assert.Nil(t, tasks[0].ParentTaskID)
}

func TestTaskRepositoryListBoundAndOrdered(t *testing.T) {
	conn := setupTestDB(t)
	user := createTestUser(t, NewUserRepository(conn), "alice")
	repo := NewTaskRepository(conn)

	for i := 0; i < 12; i++ {
		_, err := repo.Create(context.Background(), types.Task{
			UserID:   user.ID,
			Title:    fmt.Sprintf("task %d", i),
			Priority: types.PriorityMedium,
			Status:   types.StatusPending,
		})
		require.NoError(t, err)
	}

	tasks, err := repo.ListRecentByUser(context.Background(), user.ID, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 10)

	// Newest first.
	assert.Equal(t, "task 11", tasks[0].Title)
	assert.Equal(t, "task 2", tasks[9].Title)
	for i := 1; i < len(tasks); i++ {
		assert.False(t, tasks[i].CreatedAt.After(tasks[i-1].CreatedAt))
	}
}

func TestTaskRepositoryListScopedToUser(t *testing.T) {
	conn := setupTestDB(t)
	users := NewUserRepository(conn)
	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")
	repo := NewTaskRepository(conn)

	_, err := repo.Create(context.Background(), types.Task{
		UserID:   alice.ID,
		Title:    "alice task",
		Priority: types.PriorityMedium,
		Status:   types.StatusPending,
	})
	require.NoError(t, err)

	tasks, err := repo.ListRecentByUser(context.Background(), bob.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
