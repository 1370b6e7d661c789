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

type PgxExpenseRepository struct {
	BaseRepository
}

// NewExpenseRepository creates a new repository for expense data.
func NewExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) InsertExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (user_id, category, amount, date, description, linked_list_id, withdrawal_person)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING expense_id, user_id, category, amount, date, description, linked_list_id, withdrawal_person;
	`
	var inserted models.Expense
	err := r.Pool.QueryRow(ctx, query,
		m.UserID,
		m.Category,
		m.Amount,
		m.Date,
		m.Description,
		m.LinkedListID,
		m.WithdrawalPerson,
	).Scan(
		&inserted.ExpenseID,
		&inserted.UserID,
		&inserted.Category,
		&inserted.Amount,
		&inserted.Date,
		&inserted.Description,
		&inserted.LinkedListID,
		&inserted.WithdrawalPerson,
	)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("failed to insert expense: %w", err)
	}
	return mapping.ToDomainExpense(inserted), nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET category = $1, amount = $2, date = $3, description = $4, linked_list_id = $5, withdrawal_person = $6
		WHERE expense_id = $7 AND user_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Category,
		m.Amount,
		m.Date,
		m.Description,
		m.LinkedListID,
		m.WithdrawalPerson,
		m.ExpenseID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, m.ExpenseID)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, expenseID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}
	return nil
}

func (r *PgxExpenseRepository) ListExpensesByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, user_id, category, amount, date, description, linked_list_id, withdrawal_person
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var ms []models.Expense
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(
			&m.ExpenseID,
			&m.UserID,
			&m.Category,
			&m.Amount,
			&m.Date,
			&m.Description,
			&m.LinkedListID,
			&m.WithdrawalPerson,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}
