package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/gotodo/webapp/types"
)

// TaskRepository handles persistence for tasks.
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task owned by task.UserID.
func (r *TaskRepository) Create(ctx context.Context, task types.Task) (types.Task, error) {
	task.CreatedAt = time.Now()

	const query = `
		INSERT INTO tasks (user_id, title, description, priority, status, parent_task_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(
		ctx,
		query,
		task.UserID,
		task.Title,
		nullString(task.Description),
		string(task.Priority),
		string(task.Status),
		nullInt64(task.ParentTaskID),
		formatTime(task.CreatedAt),
	)
	if err != nil {
		return types.Task{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return types.Task{}, err
	}
	task.ID = id
	return task, nil
}

// ListRecentByUser returns at most limit tasks owned by userID, newest
// first. The id tiebreak keeps the order total for equal timestamps.
func (r *TaskRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]types.Task, error) {
	const query = `
		SELECT id, user_id, title, description, priority, status, parent_task_id, created_at
		FROM tasks
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []types.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func scanTask(rows *sql.Rows) (types.Task, error) {
	var (
		task        types.Task
		description sql.NullString
		parentID    sql.NullInt64
		createdAt   string
	)
	err := rows.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&description,
		&task.Priority,
		&task.Status,
		&parentID,
		&createdAt,
	)
	if err != nil {
		return types.Task{}, err
	}
	task.Description = description.String
	if parentID.Valid {
		task.ParentTaskID = &parentID.Int64
	}
	if task.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.Task{}, err
	}
	return task, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
