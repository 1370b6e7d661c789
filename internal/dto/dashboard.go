package dto

import (
	"github.com/shopspring/decimal"

	"github.com/limpanome/crm_backend/internal/core/domain"
)

// StatsResponse aggregates the current client book for the dashboard.
type StatsResponse struct {
	ActiveContracts    int             `json:"activeContracts"`
	EligibleContracts  int             `json:"eligibleContracts"`
	InListContracts    int             `json:"inListContracts"`
	CompletedContracts int             `json:"completedContracts"`
	ReturnedContracts  int             `json:"returnedContracts"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
}

// ToStatsResponse converts domain.DashboardStats to its response DTO.
func ToStatsResponse(s domain.DashboardStats) StatsResponse {
	return StatsResponse{
		ActiveContracts:    s.ActiveContracts,
		EligibleContracts:  s.EligibleContracts,
		InListContracts:    s.InListContracts,
		CompletedContracts: s.CompletedContracts,
		ReturnedContracts:  s.ReturnedContracts,
		TotalRevenue:       s.TotalRevenue,
		OutstandingBalance: s.OutstandingBalance,
	}
}
