package store

import (
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Balance returns the paid/remaining/percentage breakdown for a contract.
// An unknown contract yields a zero-valued balance rather than an error so
// read paths stay total. A zero total value is treated as 0% paid with
// nothing remaining, to keep the division defined.
//
// The percentage is the raw ratio; an overpaid contract reports more than
// one hundred percent.
func (s *Store) Balance(contractID string) domain.ContractBalance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var contract *domain.Contract
	for i := range s.contracts {
		if s.contracts[i].ContractID == contractID {
			contract = &s.contracts[i]
			break
		}
	}
	if contract == nil {
		return domain.ContractBalance{
			Paid:       decimal.Zero,
			Remaining:  decimal.Zero,
			Percentage: decimal.Zero,
		}
	}

	paid := decimal.Zero
	for _, p := range s.payments {
		if p.ContractID == contractID {
			paid = paid.Add(p.Amount)
		}
	}

	if !contract.TotalValue.IsPositive() {
		return domain.ContractBalance{
			Paid:       paid,
			Remaining:  decimal.Zero,
			Percentage: decimal.Zero,
		}
	}

	return domain.ContractBalance{
		Paid:       paid,
		Remaining:  contract.TotalValue.Sub(paid),
		Percentage: paid.Div(contract.TotalValue).Mul(oneHundred),
	}
}

// Stats aggregates the whole client book for the dashboard. It is recomputed
// from the mirror on every call; at a single operator's scale that is cheap
// enough to skip caching.
func (s *Store) Stats() domain.DashboardStats {
	s.mu.RLock()
	contracts := make([]domain.Contract, len(s.contracts))
	copy(contracts, s.contracts)
	s.mu.RUnlock()

	stats := domain.DashboardStats{
		TotalRevenue:       decimal.Zero,
		OutstandingBalance: decimal.Zero,
	}
	for _, c := range contracts {
		bal := s.Balance(c.ContractID)
		stats.TotalRevenue = stats.TotalRevenue.Add(bal.Paid)
		stats.OutstandingBalance = stats.OutstandingBalance.Add(bal.Remaining)

		switch c.Status {
		case domain.StatusInProgress:
			stats.ActiveContracts++
		case domain.StatusEligible:
			stats.ActiveContracts++
			stats.EligibleContracts++
		case domain.StatusInList:
			stats.InListContracts++
		case domain.StatusCompleted:
			stats.CompletedContracts++
		case domain.StatusReturned:
			stats.ReturnedContracts++
		}
	}
	return stats
}
