// Package services holds the account-facing services that sit outside the
// domain store: authentication and operator profile management.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	portsrepo "github.com/limpanome/crm_backend/internal/core/ports/repositories"
	"github.com/limpanome/crm_backend/internal/middleware"
	"github.com/limpanome/crm_backend/internal/platform/config"
	"github.com/limpanome/crm_backend/internal/utils"
)

// AuthService verifies operator credentials and issues access tokens.
type AuthService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Login checks an email/password pair and returns the user plus a signed
// access token. Every failure mode (unknown email, wrong password, backend
// error) collapses to ErrUnauthorized so the login screen reveals nothing
// about which part failed.
func (s *AuthService) Login(ctx context.Context, email string, password string) (*domain.User, string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to look up user during login", slog.String("error", err.Error()))
		}
		return nil, "", time.Time{}, apperrors.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", time.Time{}, apperrors.ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign access token", slog.String("error", err.Error()))
		return nil, "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	logger.Info("Operator logged in", slog.String("user_id", user.UserID))
	return user, token, expiresAt, nil
}

// Register creates a new operator account with a hashed password.
func (s *AuthService) Register(ctx context.Context, name string, email string, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:        uuid.NewString(),
		Name:          name,
		Email:         email,
		PasswordHash:  hash,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("Operator registered", slog.String("user_id", user.UserID))
	return &user, nil
}
