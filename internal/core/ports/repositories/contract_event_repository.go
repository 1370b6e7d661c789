package repositories

import (
	"context"

	"github.com/limpanome/crm_backend/internal/core/domain"
)

// ContractEventRepository persists the append-only contract audit trail.
// Events are never updated or deleted.
type ContractEventRepository interface {
	InsertEvent(ctx context.Context, event domain.ContractEvent) (domain.ContractEvent, error)
	// InsertEvents stores a batch of events, e.g. one per contract when a
	// list is completed.
	InsertEvents(ctx context.Context, events []domain.ContractEvent) ([]domain.ContractEvent, error)
	// ListEventsByUser returns the user's events, most recent first.
	ListEventsByUser(ctx context.Context, userID string) ([]domain.ContractEvent, error)
}
