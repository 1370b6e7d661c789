package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus describes where a contract sits in the clearance lifecycle.
type ContractStatus string

const (
	// StatusDraft is representable and sorts first, but no transition currently
	// produces it; it is reserved for contracts captured before signing.
	StatusDraft      ContractStatus = "draft"
	StatusInProgress ContractStatus = "in_progress"
	StatusEligible   ContractStatus = "eligible"
	StatusInList     ContractStatus = "in_list"
	StatusCompleted  ContractStatus = "completed"
	StatusReturned   ContractStatus = "returned"
)

// statusPriority orders statuses for display, earliest lifecycle stage first.
var statusPriority = map[ContractStatus]int{
	StatusDraft:      0,
	StatusInProgress: 1,
	StatusEligible:   2,
	StatusInList:     3,
	StatusCompleted:  4,
	StatusReturned:   5,
}

// Priority returns the display ordering rank of a status. Unknown statuses sort last.
func (s ContractStatus) Priority() int {
	if p, ok := statusPriority[s]; ok {
		return p
	}
	return len(statusPriority)
}

// IsValid reports whether s is one of the defined contract statuses.
func (s ContractStatus) IsValid() bool {
	_, ok := statusPriority[s]
	return ok
}

// Contract is a debt-clearance service agreement tied to one client.
// ListID is set iff the contract currently sits in an open shipment list.
type Contract struct {
	ContractID   string          `json:"contractID"`
	UserID       string          `json:"userID"`
	ClientID     string          `json:"clientID"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	DownPayment  decimal.Decimal `json:"downPayment"`
	Installments int             `json:"installments"`
	Status       ContractStatus  `json:"status"`
	ListID       string          `json:"listID,omitempty"` // empty when not in a list
	CreatedAt    time.Time       `json:"createdAt"`
}

// EligibilityThreshold is the fraction of TotalValue that must be paid before
// a contract becomes eligible for a shipment list.
var EligibilityThreshold = decimal.NewFromFloat(0.5)
