package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/core/store"
)

// CreateExpenseRequest defines the data needed to log an operating expense.
type CreateExpenseRequest struct {
	Category         domain.ExpenseCategory `json:"category" binding:"required,oneof=traffic partnership list withdrawal other"`
	Amount           decimal.Decimal        `json:"amount" binding:"required,decimalgt0"`
	Date             *time.Time             `json:"date"` // defaults to now when absent
	Description      string                 `json:"description"`
	LinkedListID     string                 `json:"linkedListID"`
	WithdrawalPerson string                 `json:"withdrawalPerson"`
}

// ToNewExpense converts the request into a store input.
func (r CreateExpenseRequest) ToNewExpense() store.NewExpense {
	input := store.NewExpense{
		Category:         r.Category,
		Amount:           r.Amount,
		Description:      r.Description,
		LinkedListID:     r.LinkedListID,
		WithdrawalPerson: r.WithdrawalPerson,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// UpdateExpenseRequest defines a partial expense edit.
type UpdateExpenseRequest struct {
	Category         *domain.ExpenseCategory `json:"category" binding:"omitempty,oneof=traffic partnership list withdrawal other"`
	Amount           *decimal.Decimal        `json:"amount" binding:"omitempty,decimalgt0"`
	Date             *time.Time              `json:"date"`
	Description      *string                 `json:"description"`
	LinkedListID     *string                 `json:"linkedListID"`
	WithdrawalPerson *string                 `json:"withdrawalPerson"`
}

// ToExpensePatch converts the request into a store patch.
func (r UpdateExpenseRequest) ToExpensePatch() store.ExpensePatch {
	return store.ExpensePatch{
		Category:         r.Category,
		Amount:           r.Amount,
		Date:             r.Date,
		Description:      r.Description,
		LinkedListID:     r.LinkedListID,
		WithdrawalPerson: r.WithdrawalPerson,
	}
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID        string                 `json:"expenseID"`
	Category         domain.ExpenseCategory `json:"category"`
	Amount           decimal.Decimal        `json:"amount"`
	Date             time.Time              `json:"date"`
	Description      string                 `json:"description,omitempty"`
	LinkedListID     string                 `json:"linkedListID,omitempty"`
	WithdrawalPerson string                 `json:"withdrawalPerson,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:        e.ExpenseID,
		Category:         e.Category,
		Amount:           e.Amount,
		Date:             e.Date,
		Description:      e.Description,
		LinkedListID:     e.LinkedListID,
		WithdrawalPerson: e.WithdrawalPerson,
	}
}

// ToExpenseResponseList converts a slice of domain.Expense to response DTOs.
func ToExpenseResponseList(es []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(es))
	for i, e := range es {
		out[i] = ToExpenseResponse(e)
	}
	return out
}
