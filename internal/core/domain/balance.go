package domain

import "github.com/shopspring/decimal"

// ContractBalance is the paid/remaining/percentage breakdown derived from a
// contract's payments. Percentage is the raw value, not clamped to 100.
type ContractBalance struct {
	Paid       decimal.Decimal `json:"paid"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}

// DashboardStats aggregates the current client book for the dashboard.
type DashboardStats struct {
	ActiveContracts    int             `json:"activeContracts"` // in_progress + eligible
	EligibleContracts  int             `json:"eligibleContracts"`
	InListContracts    int             `json:"inListContracts"`
	CompletedContracts int             `json:"completedContracts"`
	ReturnedContracts  int             `json:"returnedContracts"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
}
