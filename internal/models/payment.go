package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the database row shape for a payment.
type Payment struct {
	PaymentID  string          `db:"payment_id"`
	UserID     string          `db:"user_id"`
	ContractID string          `db:"contract_id"`
	Amount     decimal.Decimal `db:"amount"`
	Date       time.Time       `db:"date"`
	Method     string          `db:"method"`
	Notes      string          `db:"notes"`
}
