// Package repositories declares the persistence ports the domain store and
// services depend on. Implementations live under
// internal/repositories/database.
package repositories

import (
	"context"

	"github.com/limpanome/crm_backend/internal/core/domain"
)

// ClientRepository persists clients for an owning user.
type ClientRepository interface {
	// InsertClient stores a new client and returns the authoritative row with
	// the database-assigned identifier.
	InsertClient(ctx context.Context, client domain.Client) (domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID string, userID string) error
	// ListClientsByUser returns the user's clients, newest first.
	ListClientsByUser(ctx context.Context, userID string) ([]domain.Client, error)
}
