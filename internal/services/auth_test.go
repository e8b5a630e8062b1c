package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gotodo/webapp/config"
	"github.com/gotodo/webapp/internal/db"
	"github.com/gotodo/webapp/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := config.Config{
		Database: config.DatabaseConfig{
			Path: filepath.Join(t.TempDir(), "todo_test.db"),
		},
	}

	conn, err := db.Open(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, db.MigrateUp(conn))

	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

func newAuthService(t *testing.T) (*AuthService, *store.UserRepository) {
	t.Helper()
	repo := store.NewUserRepository(setupTestDB(t))
	return NewAuthService(repo), repo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newAuthService(t)

	user, err := svc.Register(context.Background(), "alice", "a@x.com", "pw123", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	stored, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123")))
}

func TestRegisterValidationOrder(t *testing.T) {
	svc, _ := newAuthService(t)

	// Empty username is reported before the password mismatch.
	_, err := svc.Register(context.Background(), "  ", "a@x.com", "pw1", "pw2")
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "username", verr.Field)

	_, err = svc.Register(context.Background(), "alice", "", "pw1", "pw1")
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "email", verr.Field)

	_, err = svc.Register(context.Background(), "alice", "a@x.com", "pw1", "pw2")
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "confirmPassword", verr.Field)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), "alice", "a@x.com", "pw123", "pw123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "b@x.com", "pw123", "pw123")
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), "alice", "a@x.com", "pw123", "pw123")
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestLoginUniformFailure(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), "alice", "a@x.com", "pw123", "pw123")
	require.NoError(t, err)

	// Wrong password and unknown username are indistinguishable.
	_, wrongPassword := svc.Login(context.Background(), "alice", "nope")
	_, unknownUser := svc.Login(context.Background(), "mallory", "whatever")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}
