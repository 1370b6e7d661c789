package repositories

import (
	"context"

	"github.com/limpanome/crm_backend/internal/core/domain"
)

// ContractRepository persists contracts and their lifecycle fields.
type ContractRepository interface {
	// InsertContract stores a new contract and returns the authoritative row
	// with the database-assigned identifier.
	InsertContract(ctx context.Context, contract domain.Contract) (domain.Contract, error)
	// UpdateContract writes all mutable fields (values, status, list link).
	UpdateContract(ctx context.Context, contract domain.Contract) error
	// CompleteListMembers marks every contract linked to the list as completed.
	// The list link is kept for history.
	CompleteListMembers(ctx context.Context, listID string, userID string) error
	// ResetListMembers detaches every contract linked to the list and resets
	// its status to eligible. Used when a list is deleted.
	ResetListMembers(ctx context.Context, listID string, userID string) error
	// ListContractsByUser returns the user's contracts, newest first.
	ListContractsByUser(ctx context.Context, userID string) ([]domain.Contract, error)
}
