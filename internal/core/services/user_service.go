package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	portsrepo "github.com/limpanome/crm_backend/internal/core/ports/repositories"
	"github.com/limpanome/crm_backend/internal/middleware"
	"github.com/limpanome/crm_backend/internal/utils"
)

// UserService manages operator profiles.
type UserService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserByID fetches an operator account.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find user", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes the operator's display name and email.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, name string, email string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateUserProfile(ctx, userID, name, email, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update profile", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, err
	}

	logger.Info("Profile updated", slog.String("user_id", userID))
	return s.userRepo.FindUserByID(ctx, userID)
}

// ChangePassword replaces the operator's password after verifying the
// current one.
func (s *UserService) ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must have at least 6 characters", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password does not match", apperrors.ErrUnauthorized)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdateUserPassword(ctx, userID, hash, time.Now().UTC()); err != nil {
		logger.Error("Failed to update password", slog.String("error", err.Error()), slog.String("user_id", userID))
		return err
	}

	logger.Info("Password changed", slog.String("user_id", userID))
	return nil
}
