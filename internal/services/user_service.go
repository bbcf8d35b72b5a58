package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

type userService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *slog.Logger
}

// NewUserService creates the service owning user rows
func NewUserService(userRepo repositories.UserRepositoryInterface, logger *slog.Logger) UserServiceInterface {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// EnsureUser returns the user with the given id, creating it from the token
// identity on first sight
func (s *userService) EnsureUser(userID uuid.UUID, email, displayName string) (*models.User, error) {
	if userID == uuid.Nil {
		return nil, invalid("user_id", "is required")
	}

	user, err := s.userRepo.GetByID(userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, invalid("email", "is required")
	}

	user = &models.User{
		ID:          userID,
		Email:       email,
		DisplayName: strings.TrimSpace(displayName),
	}
	if err := user.Validate(); err != nil {
		return nil, invalid("email", err.Error())
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, translateRepositoryError(err)
	}

	s.logger.Info("user provisioned", "user_id", userID)
	return user, nil
}

// GetUser retrieves a user by id
func (s *userService) GetUser(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return user, nil
}

// DeleteUser removes the user together with accounts, installments, transactions and summaries
func (s *userService) DeleteUser(userID uuid.UUID) error {
	if err := s.userRepo.Delete(userID); err != nil {
		return translateRepositoryError(err)
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}
