package mapping

import (
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense.
// Empty optional fields map to NULL at the database.
func ToModelExpense(d domain.Expense) models.Expense {
	var linkedListID, withdrawalPerson *string
	if d.LinkedListID != "" {
		v := d.LinkedListID
		linkedListID = &v
	}
	if d.WithdrawalPerson != "" {
		v := d.WithdrawalPerson
		withdrawalPerson = &v
	}
	return models.Expense{
		ExpenseID:        d.ExpenseID,
		UserID:           d.UserID,
		Category:         string(d.Category),
		Amount:           d.Amount,
		Date:             d.Date,
		Description:      d.Description,
		LinkedListID:     linkedListID,
		WithdrawalPerson: withdrawalPerson,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense.
func ToDomainExpense(m models.Expense) domain.Expense {
	linkedListID := ""
	if m.LinkedListID != nil {
		linkedListID = *m.LinkedListID
	}
	withdrawalPerson := ""
	if m.WithdrawalPerson != nil {
		withdrawalPerson = *m.WithdrawalPerson
	}
	return domain.Expense{
		ExpenseID:        m.ExpenseID,
		UserID:           m.UserID,
		Category:         domain.ExpenseCategory(m.Category),
		Amount:           m.Amount,
		Date:             m.Date,
		Description:      m.Description,
		LinkedListID:     linkedListID,
		WithdrawalPerson: withdrawalPerson,
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
