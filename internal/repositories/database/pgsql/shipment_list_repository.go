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

type PgxShipmentListRepository struct {
	BaseRepository
}

// NewShipmentListRepository creates a new repository for shipment list data.
func NewShipmentListRepository(pool *pgxpool.Pool) portsrepo.ShipmentListRepository {
	return &PgxShipmentListRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ShipmentListRepository = (*PgxShipmentListRepository)(nil)

func (r *PgxShipmentListRepository) InsertList(ctx context.Context, list domain.ShipmentList) (domain.ShipmentList, error) {
	m := mapping.ToModelShipmentList(list)
	query := `
		INSERT INTO shipment_lists (user_id, name, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING list_id, user_id, name, status, created_at;
	`
	var inserted models.ShipmentList
	err := r.Pool.QueryRow(ctx, query,
		m.UserID,
		m.Name,
		m.Status,
		m.CreatedAt,
	).Scan(
		&inserted.ListID,
		&inserted.UserID,
		&inserted.Name,
		&inserted.Status,
		&inserted.CreatedAt,
	)
	if err != nil {
		return domain.ShipmentList{}, fmt.Errorf("failed to insert shipment list: %w", err)
	}
	return mapping.ToDomainShipmentList(inserted), nil
}

func (r *PgxShipmentListRepository) UpdateList(ctx context.Context, list domain.ShipmentList) error {
	m := mapping.ToModelShipmentList(list)
	query := `
		UPDATE shipment_lists
		SET name = $1, status = $2
		WHERE list_id = $3 AND user_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Name, m.Status, m.ListID, m.UserID)
	if err != nil {
		return fmt.Errorf("failed to update shipment list %s: %w", m.ListID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: shipment list %s", apperrors.ErrNotFound, m.ListID)
	}
	return nil
}

func (r *PgxShipmentListRepository) DeleteList(ctx context.Context, listID string, userID string) error {
	// contracts.list_id is ON DELETE SET NULL; the status reset is done
	// separately through the contract repository.
	query := `DELETE FROM shipment_lists WHERE list_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, listID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete shipment list %s: %w", listID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: shipment list %s", apperrors.ErrNotFound, listID)
	}
	return nil
}

func (r *PgxShipmentListRepository) ListListsByUser(ctx context.Context, userID string) ([]domain.ShipmentList, error) {
	query := `
		SELECT list_id, user_id, name, status, created_at
		FROM shipment_lists
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipment lists: %w", err)
	}
	defer rows.Close()

	var ms []models.ShipmentList
	for rows.Next() {
		var m models.ShipmentList
		if err := rows.Scan(
			&m.ListID,
			&m.UserID,
			&m.Name,
			&m.Status,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shipment list row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipment list rows: %w", err)
	}
	return mapping.ToDomainShipmentListSlice(ms), nil
}
