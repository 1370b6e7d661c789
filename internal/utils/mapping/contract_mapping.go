package mapping

import (
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/models"
)

// ToModelContract converts a domain Contract to a model Contract.
// An empty ListID maps to NULL at the database.
func ToModelContract(d domain.Contract) models.Contract {
	var listID *string
	if d.ListID != "" {
		v := d.ListID
		listID = &v
	}
	return models.Contract{
		ContractID:   d.ContractID,
		UserID:       d.UserID,
		ClientID:     d.ClientID,
		TotalValue:   d.TotalValue,
		DownPayment:  d.DownPayment,
		Installments: d.Installments,
		Status:       models.ContractStatus(d.Status),
		ListID:       listID,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainContract converts a model Contract to a domain Contract.
func ToDomainContract(m models.Contract) domain.Contract {
	listID := ""
	if m.ListID != nil {
		listID = *m.ListID
	}
	return domain.Contract{
		ContractID:   m.ContractID,
		UserID:       m.UserID,
		ClientID:     m.ClientID,
		TotalValue:   m.TotalValue,
		DownPayment:  m.DownPayment,
		Installments: m.Installments,
		Status:       domain.ContractStatus(m.Status),
		ListID:       listID,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainContractSlice converts a slice of model Contracts to domain Contracts.
func ToDomainContractSlice(ms []models.Contract) []domain.Contract {
	ds := make([]domain.Contract, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContract(m)
	}
	return ds
}
