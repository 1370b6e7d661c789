package mapping

import (
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/models"
)

// ToModelContractEvent converts a domain ContractEvent to a model ContractEvent.
func ToModelContractEvent(d domain.ContractEvent) models.ContractEvent {
	return models.ContractEvent{
		EventID:     d.EventID,
		UserID:      d.UserID,
		ContractID:  d.ContractID,
		Type:        string(d.Type),
		Description: d.Description,
		Date:        d.Date,
	}
}

// ToDomainContractEvent converts a model ContractEvent to a domain ContractEvent.
func ToDomainContractEvent(m models.ContractEvent) domain.ContractEvent {
	return domain.ContractEvent{
		EventID:     m.EventID,
		UserID:      m.UserID,
		ContractID:  m.ContractID,
		Type:        domain.EventType(m.Type),
		Description: m.Description,
		Date:        m.Date,
	}
}

// ToDomainContractEventSlice converts a slice of model ContractEvents to domain ContractEvents.
func ToDomainContractEventSlice(ms []models.ContractEvent) []domain.ContractEvent {
	ds := make([]domain.ContractEvent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContractEvent(m)
	}
	return ds
}
