package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the database row shape for an operating expense.
// linked_list_id and withdrawal_person are nullable.
type Expense struct {
	ExpenseID        string          `db:"expense_id"`
	UserID           string          `db:"user_id"`
	Category         string          `db:"category"`
	Amount           decimal.Decimal `db:"amount"`
	Date             time.Time       `db:"date"`
	Description      string          `db:"description"`
	LinkedListID     *string         `db:"linked_list_id"`
	WithdrawalPerson *string         `db:"withdrawal_person"`
}
