// File: services/user/auth.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"venuely/models"
	"venuely/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account and returns a signed session token.
func (s *DefaultUserService) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters long")
	}

	if existing, err := s.Repo.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, DuplicateUserError{Username: username}
	} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(usr.ID, usr.Username, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	s.logger().Info("user registered", zap.String("userId", usr.ID), zap.String("username", usr.Username))
	return &AuthResponse{ID: usr.ID, Token: token, Username: usr.Username, Email: usr.Email}, nil
}

// Authenticate verifies credentials and returns a signed session token.
func (s *DefaultUserService) Authenticate(ctx context.Context, usernameOrEmail, password string) (*AuthResponse, error) {
	usernameOrEmail = strings.TrimSpace(usernameOrEmail)
	usr, err := s.Repo.GetByUsernameOrEmail(ctx, usernameOrEmail, usernameOrEmail)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(usr.ID, usr.Username, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{ID: usr.ID, Token: token, Username: usr.Username, Email: usr.Email}, nil
}

// GetByID fetches a user's profile.
func (s *DefaultUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return usr, nil
}
