package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gotodo/webapp/types"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (types.User, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (types.User, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

// Create inserts a new user. A violated uniqueness constraint on username
// or email surfaces as ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	user.CreatedAt = time.Now()

	const query = `
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.PasswordHash,
		formatTime(user.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return types.User{}, ErrDuplicate
		}
		return types.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return types.User{}, err
	}
	user.ID = id
	return user, nil
}

func (r *UserRepository) scanUser(row *sql.Row) (types.User, error) {
	var (
		user      types.User
		createdAt string
	)
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	if user.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.User{}, err
	}
	return user, nil
}
