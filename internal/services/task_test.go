package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/gotodo/webapp/internal/store"
	"github.com/gotodo/webapp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskServiceWithUser(t *testing.T) (*TaskService, *store.TaskRepository, int64) {
	t.Helper()
	conn := setupTestDB(t)

	user, err := store.NewUserRepository(conn).Create(context.Background(), types.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	repo := store.NewTaskRepository(conn)
	return NewTaskService(repo), repo, user.ID
}

func TestCreateTaskEmptyTitleRejected(t *testing.T) {
	svc, repo, userID := newTaskServiceWithUser(t)

	_, err := svc.Create(context.Background(), userID, "   ", "desc", types.PriorityHigh)
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "title", verr.Field)

	// Nothing was persisted.
	tasks, err := repo.ListRecentByUser(context.Background(), userID, 10)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCreateTaskPriorityDefaults(t *testing.T) {
	svc, _, userID := newTaskServiceWithUser(t)

	blank, err := svc.Create(context.Background(), userID, "Buy milk", "", types.Priority(""))
	require.NoError(t, err)
	assert.Equal(t, types.PriorityMedium, blank.Priority)

	invalid, err := svc.Create(context.Background(), userID, "Buy eggs", "", types.Priority("urgent"))
	require.NoError(t, err)
	assert.Equal(t, types.PriorityMedium, invalid.Priority)

	kept, err := svc.Create(context.Background(), userID, "Buy bread", "", types.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, types.PriorityHigh, kept.Priority)
}

func TestCreateTaskStartsPending(t *testing.T) {
	svc, _, userID := newTaskServiceWithUser(t)

	task, err := svc.Create(context.Background(), userID, "Buy milk", "", types.PriorityLow)
	require.NoError(t, err)
	assert.Equal(t, types.StatusPending, task.Status)
}

func TestListForUserBoundAndCounted(t *testing.T) {
	svc, _, userID := newTaskServiceWithUser(t)

	for i := 0; i < 12; i++ {
		_, err := svc.Create(context.Background(), userID, fmt.Sprintf("task %d", i), "", types.PriorityMedium)
		require.NoError(t, err)
	}

	summary, err := svc.ListForUser(context.Background(), userID)
	require.NoError(t, err)

	assert.Len(t, summary.Tasks, 10)
	assert.Equal(t, 10, summary.Total)
	assert.Equal(t, summary.Total, summary.Pending+summary.InProgress+summary.Completed)
	assert.Equal(t, "task 11", summary.Tasks[0].Title)
}
