package repositories

import (
	"context"
	"time"

	"github.com/limpanome/crm_backend/internal/core/domain"
)

// UserRepository persists staff operator accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUserProfile(ctx context.Context, userID string, name string, email string, now time.Time) error
	UpdateUserPassword(ctx context.Context, userID string, passwordHash string, now time.Time) error
}
