package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus mirrors domain.ContractStatus at the persistence boundary.
type ContractStatus string

// Contract is the database row shape for a contract.
// ListID is a nullable FK to shipment_lists (ON DELETE SET NULL).
type Contract struct {
	ContractID   string          `db:"contract_id"`
	UserID       string          `db:"user_id"`
	ClientID     string          `db:"client_id"`
	TotalValue   decimal.Decimal `db:"total_value"`
	DownPayment  decimal.Decimal `db:"down_payment"`
	Installments int             `db:"installments"`
	Status       ContractStatus  `db:"status"`
	ListID       *string         `db:"list_id"`
	CreatedAt    time.Time       `db:"created_at"`
}
