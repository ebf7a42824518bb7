// Package service contains the business logic for authentication, catalog
// queries and team assembly.
package service

import (
	"context"
	"errors"
	"net/http"

	"team-builder-service/internal/model"
	"team-builder-service/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// loginFailedMsg is intentionally the same for an unknown username and a
// wrong password, so login never reveals which one it was.
const loginFailedMsg = "invalid username or password"

// UserRepository is the user storage contract used by the auth service.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
}

// AuthService handles registration and credential checks.
type AuthService struct {
	users UserRepository
}

// NewAuthService creates the auth service.
func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register validates the registration form, hashes the password with bcrypt
// and creates the user. A duplicate username yields USERNAME_TAKEN.
func (s *AuthService) Register(ctx context.Context, username, password, passwordConfirm string) (model.User, error) {
	if username == "" || password == "" || passwordConfirm == "" {
		return model.User{}, ErrBadRequest("username, password and password_confirm are required")
	}
	if password != passwordConfirm {
		return model.User{}, ErrDomain("PASSWORD_MISMATCH", "passwords do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to hash password",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return model.User{}, ErrDomain("USERNAME_TAKEN", "username already in use")
		}
		return model.User{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to create user",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}
	return user, nil
}

// Login checks the credentials and returns the matching user. The failure is
// generic on purpose: callers cannot tell a missing user from a bad password.
func (s *AuthService) Login(ctx context.Context, username, password string) (model.User, error) {
	if username == "" || password == "" {
		return model.User{}, ErrUnauthorized(loginFailedMsg)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrUnauthorized(loginFailedMsg)
		}
		return model.User{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to get user",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, ErrUnauthorized(loginFailedMsg)
	}
	return user, nil
}
