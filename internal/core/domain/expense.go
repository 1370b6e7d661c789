package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies operating expenses in the financial ledger.
type ExpenseCategory string

const (
	ExpenseTraffic     ExpenseCategory = "traffic"
	ExpensePartnership ExpenseCategory = "partnership"
	ExpenseList        ExpenseCategory = "list"
	ExpenseWithdrawal  ExpenseCategory = "withdrawal"
	ExpenseOther       ExpenseCategory = "other"
)

// Expense is an operating cost logged by staff.
// LinkedListID is only meaningful for the list category, WithdrawalPerson
// only for withdrawals.
type Expense struct {
	ExpenseID        string          `json:"expenseID"`
	UserID           string          `json:"userID"`
	Category         ExpenseCategory `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	Date             time.Time       `json:"date"`
	Description      string          `json:"description,omitempty"`
	LinkedListID     string          `json:"linkedListID,omitempty"`
	WithdrawalPerson string          `json:"withdrawalPerson,omitempty"`
}
