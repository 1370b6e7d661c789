package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limpanome/crm_backend/internal/core/domain"
	portsrepo "github.com/limpanome/crm_backend/internal/core/ports/repositories"
	"github.com/limpanome/crm_backend/internal/models"
	"github.com/limpanome/crm_backend/internal/utils/mapping"
)

type PgxContractEventRepository struct {
	BaseRepository
}

// NewContractEventRepository creates a new repository for contract audit events.
func NewContractEventRepository(pool *pgxpool.Pool) portsrepo.ContractEventRepository {
	return &PgxContractEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContractEventRepository = (*PgxContractEventRepository)(nil)

const insertEventQuery = `
	INSERT INTO contract_events (user_id, contract_id, type, description, date)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING event_id, user_id, contract_id, type, description, date;
`

func (r *PgxContractEventRepository) InsertEvent(ctx context.Context, event domain.ContractEvent) (domain.ContractEvent, error) {
	m := mapping.ToModelContractEvent(event)
	var inserted models.ContractEvent
	err := r.Pool.QueryRow(ctx, insertEventQuery,
		m.UserID,
		m.ContractID,
		m.Type,
		m.Description,
		m.Date,
	).Scan(
		&inserted.EventID,
		&inserted.UserID,
		&inserted.ContractID,
		&inserted.Type,
		&inserted.Description,
		&inserted.Date,
	)
	if err != nil {
		return domain.ContractEvent{}, fmt.Errorf("failed to insert contract event: %w", err)
	}
	return mapping.ToDomainContractEvent(inserted), nil
}

// InsertEvents stores a batch of events inside one transaction so a list
// completion either records the whole trail or none of it.
func (r *PgxContractEventRepository) InsertEvents(ctx context.Context, events []domain.ContractEvent) ([]domain.ContractEvent, error) {
	if len(events) == 0 {
		return nil, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, event := range events {
		m := mapping.ToModelContractEvent(event)
		batch.Queue(insertEventQuery, m.UserID, m.ContractID, m.Type, m.Description, m.Date)
	}

	results := tx.SendBatch(ctx, batch)
	inserted := make([]models.ContractEvent, 0, len(events))
	for range events {
		var m models.ContractEvent
		if err := results.QueryRow().Scan(
			&m.EventID,
			&m.UserID,
			&m.ContractID,
			&m.Type,
			&m.Description,
			&m.Date,
		); err != nil {
			results.Close()
			return nil, fmt.Errorf("failed to insert contract event batch: %w", err)
		}
		inserted = append(inserted, m)
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("failed to close contract event batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return mapping.ToDomainContractEventSlice(inserted), nil
}

func (r *PgxContractEventRepository) ListEventsByUser(ctx context.Context, userID string) ([]domain.ContractEvent, error) {
	query := `
		SELECT event_id, user_id, contract_id, type, description, date
		FROM contract_events
		WHERE user_id = $1
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contract events: %w", err)
	}
	defer rows.Close()

	var ms []models.ContractEvent
	for rows.Next() {
		var m models.ContractEvent
		if err := rows.Scan(
			&m.EventID,
			&m.UserID,
			&m.ContractID,
			&m.Type,
			&m.Description,
			&m.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract event row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contract event rows: %w", err)
	}
	return mapping.ToDomainContractEventSlice(ms), nil
}
