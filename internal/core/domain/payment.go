package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a single installment received against a contract.
// Payments are immutable once created; they can only be deleted.
type Payment struct {
	PaymentID  string          `json:"paymentID"`
	UserID     string          `json:"userID"`
	ContractID string          `json:"contractID"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Method     string          `json:"method"` // free-text label (pix, boleto, ...)
	Notes      string          `json:"notes,omitempty"`
}
