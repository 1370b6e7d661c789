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

type PgxPaymentRepository struct {
	BaseRepository
}

// NewPaymentRepository creates a new repository for payment data.
func NewPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) InsertPayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (user_id, contract_id, amount, date, method, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING payment_id, user_id, contract_id, amount, date, method, notes;
	`
	var inserted models.Payment
	err := r.Pool.QueryRow(ctx, query,
		m.UserID,
		m.ContractID,
		m.Amount,
		m.Date,
		m.Method,
		m.Notes,
	).Scan(
		&inserted.PaymentID,
		&inserted.UserID,
		&inserted.ContractID,
		&inserted.Amount,
		&inserted.Date,
		&inserted.Method,
		&inserted.Notes,
	)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("failed to insert payment: %w", err)
	}
	return mapping.ToDomainPayment(inserted), nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string, userID string) error {
	query := `DELETE FROM payments WHERE payment_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, paymentID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
	}
	return nil
}

func (r *PgxPaymentRepository) ListPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, user_id, contract_id, amount, date, method, notes
		FROM payments
		WHERE user_id = $1
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var ms []models.Payment
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID,
			&m.UserID,
			&m.ContractID,
			&m.Amount,
			&m.Date,
			&m.Method,
			&m.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}
