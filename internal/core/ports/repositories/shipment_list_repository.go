package repositories

import (
	"context"

	"github.com/limpanome/crm_backend/internal/core/domain"
)

// ShipmentListRepository persists shipment lists.
type ShipmentListRepository interface {
	InsertList(ctx context.Context, list domain.ShipmentList) (domain.ShipmentList, error)
	// UpdateList writes the list's mutable fields (name, status).
	UpdateList(ctx context.Context, list domain.ShipmentList) error
	DeleteList(ctx context.Context, listID string, userID string) error
	// ListListsByUser returns the user's shipment lists, newest first.
	ListListsByUser(ctx context.Context, userID string) ([]domain.ShipmentList, error)
}
