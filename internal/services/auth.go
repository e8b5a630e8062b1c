package services

import (
	"context"
	"errors"
	"strings"

	"github.com/gotodo/webapp/internal/store"
	"github.com/gotodo/webapp/types"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a valid bcrypt hash compared against when the username does
// not exist, so the failing and succeeding lookup paths do comparable work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// AuthService encapsulates registration and credential verification.
type AuthService struct {
	users UserRepository
}

func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register validates the submitted fields, hashes the password, and creates
// the account. Validation order: username, email, password confirmation.
// A taken username or email surfaces as store.ErrDuplicate.
func (s *AuthService) Register(ctx context.Context, username, email, password, confirmPassword string) (types.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return types.User{}, &ValidationError{Field: "username", Reason: "username is required"}
	}
	if email == "" {
		return types.User{}, &ValidationError{Field: "email", Reason: "email is required"}
	}
	if password == "" {
		return types.User{}, &ValidationError{Field: "password", Reason: "password is required"}
	}
	if password != confirmPassword {
		return types.User{}, &ValidationError{Field: "confirmPassword", Reason: "passwords do not match"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}

	return s.users.Create(ctx, types.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	})
}

// Login verifies the credentials and returns the matching user. An unknown
// username and a wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (types.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}
