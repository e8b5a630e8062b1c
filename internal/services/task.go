package services

import (
	"context"
	"strings"

	"github.com/gotodo/webapp/types"
)

// recentTaskLimit bounds how many tasks a listing returns.
const recentTaskLimit = 10

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task types.Task) (types.Task, error)
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]types.Task, error)
}

// TaskSummary is a user's recent tasks plus status counts derived from them.
type TaskSummary struct {
	Tasks      []types.Task
	Pending    int
	InProgress int
	Completed  int
	Total      int
}

// TaskService encapsulates task use-cases.
type TaskService struct {
	tasks TaskRepository
}

func NewTaskService(tasks TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// Create validates and persists a new task for userID. The title must be
// non-empty after trimming; a blank or unknown priority falls back to
// medium; new tasks always start pending.
func (s *TaskService) Create(ctx context.Context, userID int64, title, description string, priority types.Priority) (types.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return types.Task{}, &ValidationError{Field: "title", Reason: "title is required"}
	}
	if !priority.Valid() {
		priority = types.PriorityMedium
	}

	return s.tasks.Create(ctx, types.Task{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Priority:    priority,
		Status:      types.StatusPending,
	})
}

// ListForUser returns the user's most recent tasks, newest first, together
// with status counts computed in a single pass over the returned slice.
func (s *TaskService) ListForUser(ctx context.Context, userID int64) (TaskSummary, error) {
	tasks, err := s.tasks.ListRecentByUser(ctx, userID, recentTaskLimit)
	if err != nil {
		return TaskSummary{}, err
	}

	summary := TaskSummary{Tasks: tasks, Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case types.StatusPending:
			summary.Pending++
		case types.StatusInProgress:
			summary.InProgress++
		case types.StatusCompleted:
			summary.Completed++
		}
	}
	return summary, nil
}
