package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	portsrepo "github.com/limpanome/crm_backend/internal/core/ports/repositories"
	"github.com/limpanome/crm_backend/internal/models"
	"github.com/limpanome/crm_backend/internal/utils/mapping"
)

type PgxClientRepository struct {
	BaseRepository
}

// NewClientRepository creates a new repository for client data.
func NewClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) InsertClient(ctx context.Context, client domain.Client) (domain.Client, error) {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (user_id, name, document, phone, email, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING client_id, user_id, name, document, phone, email, notes, created_at;
	`
	var inserted models.Client
	err := r.Pool.QueryRow(ctx, query,
		m.UserID,
		m.Name,
		m.Document,
		m.Phone,
		m.Email,
		m.Notes,
	).Scan(
		&inserted.ClientID,
		&inserted.UserID,
		&inserted.Name,
		&inserted.Document,
		&inserted.Phone,
		&inserted.Email,
		&inserted.Notes,
		&inserted.CreatedAt,
	)
	if err != nil {
		return domain.Client{}, fmt.Errorf("failed to insert client: %w", err)
	}
	return mapping.ToDomainClient(inserted), nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $1, document = $2, phone = $3, email = $4, notes = $5
		WHERE client_id = $6 AND user_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Document,
		m.Phone,
		m.Email,
		m.Notes,
		m.ClientID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", m.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, m.ClientID)
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string, userID string) error {
	query := `DELETE FROM clients WHERE client_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, clientID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}
	return nil
}

func (r *PgxClientRepository) ListClientsByUser(ctx context.Context, userID string) ([]domain.Client, error) {
	query := `
		SELECT client_id, user_id, name, document, phone, email, notes, created_at
		FROM clients
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Client{}, nil
		}
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var ms []models.Client
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(
			&m.ClientID,
			&m.UserID,
			&m.Name,
			&m.Document,
			&m.Phone,
			&m.Email,
			&m.Notes,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return mapping.ToDomainClientSlice(ms), nil
}
