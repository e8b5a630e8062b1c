package types

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status is the completion state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a single todo item owned by a user.
type Task struct {
	ID          int64    `json:"id" db:"id"`
	UserID      int64    `json:"user_id" db:"user_id"`
	Title       string   `json:"title" db:"title"`
	Description string   `json:"description" db:"description"`
	Priority    Priority `json:"priority" db:"priority"`
	Status      Status   `json:"status" db:"status"`

	// ParentTaskID references another task when this one is a subtask.
	// Reserved for subtasking; no handler writes it today.
	ParentTaskID *int64 `json:"parent_task_id,omitempty" db:"parent_task_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
