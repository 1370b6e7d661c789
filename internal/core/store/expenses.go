package store

import (
	"context"
	"fmt"
	"time"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NewExpense carries the fields needed to log an operating expense.
type NewExpense struct {
	Category         domain.ExpenseCategory
	Amount           decimal.Decimal
	Date             time.Time
	Description      string
	LinkedListID     string
	WithdrawalPerson string
}

// ExpensePatch carries a partial expense edit. Nil fields are left unchanged.
type ExpensePatch struct {
	Category         *domain.ExpenseCategory
	Amount           *decimal.Decimal
	Date             *time.Time
	Description      *string
	LinkedListID     *string
	WithdrawalPerson *string
}

// AddExpense logs an operating expense.
func (s *Store) AddExpense(ctx context.Context, input NewExpense) (domain.Expense, error) {
	if !input.Amount.IsPositive() {
		return domain.Expense{}, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	optimistic := domain.Expense{
		ExpenseID:        tempID(),
		UserID:           s.userID,
		Category:         input.Category,
		Amount:           input.Amount,
		Date:             date,
		Description:      input.Description,
		LinkedListID:     input.LinkedListID,
		WithdrawalPerson: input.WithdrawalPerson,
	}

	var created domain.Expense
	err := run(ctx, s, "add_expense", mutation[domain.Expense]{
		apply: func() {
			s.expenses = append([]domain.Expense{optimistic}, s.expenses...)
		},
		send: func(ctx context.Context) (domain.Expense, error) {
			return s.repos.Expenses.InsertExpense(ctx, optimistic)
		},
		reconcile: func(result domain.Expense) {
			for i := range s.expenses {
				if s.expenses[i].ExpenseID == optimistic.ExpenseID {
					s.expenses[i] = result
					break
				}
			}
			created = result
		},
		revert: func() {
			s.expenses = removeExpenseLocked(s.expenses, optimistic.ExpenseID)
		},
	})
	if err != nil {
		return domain.Expense{}, err
	}
	return created, nil
}

// UpdateExpense applies a partial edit to an expense.
func (s *Store) UpdateExpense(ctx context.Context, expenseID string, patch ExpensePatch) (domain.Expense, error) {
	prior, ok := s.expense(expenseID)
	if !ok {
		return domain.Expense{}, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}

	updated := prior
	if patch.Category != nil {
		updated.Category = *patch.Category
	}
	if patch.Amount != nil {
		if !patch.Amount.IsPositive() {
			return domain.Expense{}, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
		}
		updated.Amount = *patch.Amount
	}
	if patch.Date != nil {
		updated.Date = *patch.Date
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.LinkedListID != nil {
		updated.LinkedListID = *patch.LinkedListID
	}
	if patch.WithdrawalPerson != nil {
		updated.WithdrawalPerson = *patch.WithdrawalPerson
	}

	err := run(ctx, s, "update_expense", mutation[struct{}]{
		apply: func() {
			s.replaceExpenseLocked(updated)
		},
		send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repos.Expenses.UpdateExpense(ctx, updated)
		},
		revert: func() {
			s.replaceExpenseLocked(prior)
		},
	})
	if err != nil {
		return domain.Expense{}, err
	}
	return updated, nil
}

// DeleteExpense removes an expense from the ledger.
func (s *Store) DeleteExpense(ctx context.Context, expenseID string) error {
	if _, ok := s.expense(expenseID); !ok {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}

	var snapshot []domain.Expense
	return run(ctx, s, "delete_expense", mutation[struct{}]{
		apply: func() {
			snapshot = make([]domain.Expense, len(s.expenses))
			copy(snapshot, s.expenses)
			s.expenses = removeExpenseLocked(s.expenses, expenseID)
		},
		send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repos.Expenses.DeleteExpense(ctx, expenseID, s.userID)
		},
		revert: func() {
			s.expenses = snapshot
		},
	})
}

func (s *Store) expense(expenseID string) (domain.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.expenses {
		if e.ExpenseID == expenseID {
			return e, true
		}
	}
	return domain.Expense{}, false
}

func (s *Store) replaceExpenseLocked(expense domain.Expense) {
	for i := range s.expenses {
		if s.expenses[i].ExpenseID == expense.ExpenseID {
			s.expenses[i] = expense
			return
		}
	}
}

func removeExpenseLocked(expenses []domain.Expense, expenseID string) []domain.Expense {
	out := expenses[:0]
	for _, e := range expenses {
		if e.ExpenseID != expenseID {
			out = append(out, e)
		}
	}
	return out
}
