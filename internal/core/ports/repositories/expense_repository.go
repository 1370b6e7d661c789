package repositories

import (
	"context"

	"github.com/limpanome/crm_backend/internal/core/domain"
)

// ExpenseRepository persists operating expenses.
type ExpenseRepository interface {
	InsertExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string, userID string) error
	// ListExpensesByUser returns the user's expenses, most recent date first.
	ListExpensesByUser(ctx context.Context, userID string) ([]domain.Expense, error)
}
