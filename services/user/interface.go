package user

import (
	"context"
	"time"

	userRepo "venuely/database/repository/user"
	"venuely/models"

	"go.uber.org/zap"
)

// Token lifetime for issued sessions.
const authTokenTTL = 24 * time.Hour

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*AuthResponse, error)
	Authenticate(ctx context.Context, usernameOrEmail, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

func (s *DefaultUserService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
