package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	portsrepo "github.com/limpanome/crm_backend/internal/core/ports/repositories"
	"github.com/limpanome/crm_backend/internal/models"
	"github.com/limpanome/crm_backend/internal/utils/mapping"
)

type PgxContractRepository struct {
	BaseRepository
}

// NewContractRepository creates a new repository for contract data.
func NewContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepository {
	return &PgxContractRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContractRepository = (*PgxContractRepository)(nil)

func (r *PgxContractRepository) InsertContract(ctx context.Context, contract domain.Contract) (domain.Contract, error) {
	m := mapping.ToModelContract(contract)
	query := `
		INSERT INTO contracts (user_id, client_id, total_value, down_payment, installments, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING contract_id, user_id, client_id, total_value, down_payment, installments, status, list_id, created_at;
	`
	var inserted models.Contract
	err := r.Pool.QueryRow(ctx, query,
		m.UserID,
		m.ClientID,
		m.TotalValue,
		m.DownPayment,
		m.Installments,
		m.Status,
	).Scan(
		&inserted.ContractID,
		&inserted.UserID,
		&inserted.ClientID,
		&inserted.TotalValue,
		&inserted.DownPayment,
		&inserted.Installments,
		&inserted.Status,
		&inserted.ListID,
		&inserted.CreatedAt,
	)
	if err != nil {
		return domain.Contract{}, fmt.Errorf("failed to insert contract: %w", err)
	}
	return mapping.ToDomainContract(inserted), nil
}

func (r *PgxContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	m := mapping.ToModelContract(contract)
	query := `
		UPDATE contracts
		SET client_id = $1, total_value = $2, down_payment = $3, installments = $4, status = $5, list_id = $6
		WHERE contract_id = $7 AND user_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.TotalValue,
		m.DownPayment,
		m.Installments,
		m.Status,
		m.ListID,
		m.ContractID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contract %s: %w", m.ContractID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: contract %s", apperrors.ErrNotFound, m.ContractID)
	}
	return nil
}

func (r *PgxContractRepository) CompleteListMembers(ctx context.Context, listID string, userID string) error {
	// list_id is kept so completed contracts retain their shipment history.
	query := `
		UPDATE contracts
		SET status = $1
		WHERE list_id = $2 AND user_id = $3;
	`
	if _, err := r.Pool.Exec(ctx, query, models.ContractStatus(domain.StatusCompleted), listID, userID); err != nil {
		return fmt.Errorf("failed to complete contracts of list %s: %w", listID, err)
	}
	return nil
}

func (r *PgxContractRepository) ResetListMembers(ctx context.Context, listID string, userID string) error {
	query := `
		UPDATE contracts
		SET status = $1, list_id = NULL
		WHERE list_id = $2 AND user_id = $3;
	`
	if _, err := r.Pool.Exec(ctx, query, models.ContractStatus(domain.StatusEligible), listID, userID); err != nil {
		return fmt.Errorf("failed to reset contracts of list %s: %w", listID, err)
	}
	return nil
}

func (r *PgxContractRepository) ListContractsByUser(ctx context.Context, userID string) ([]domain.Contract, error) {
	query := `
		SELECT contract_id, user_id, client_id, total_value, down_payment, installments, status, list_id, created_at
		FROM contracts
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var ms []models.Contract
	for rows.Next() {
		var m models.Contract
		if err := rows.Scan(
			&m.ContractID,
			&m.UserID,
			&m.ClientID,
			&m.TotalValue,
			&m.DownPayment,
			&m.Installments,
			&m.Status,
			&m.ListID,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contract rows: %w", err)
	}
	return mapping.ToDomainContractSlice(ms), nil
}
