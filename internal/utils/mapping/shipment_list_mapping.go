package mapping

import (
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/models"
)

// ToModelShipmentList converts a domain ShipmentList to a model ShipmentList.
// ItemsCount is a projection and is not persisted.
func ToModelShipmentList(d domain.ShipmentList) models.ShipmentList {
	return models.ShipmentList{
		ListID:    d.ListID,
		UserID:    d.UserID,
		Name:      d.Name,
		Status:    models.ListStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainShipmentList converts a model ShipmentList to a domain ShipmentList.
// ItemsCount starts at zero and is recomputed by the store.
func ToDomainShipmentList(m models.ShipmentList) domain.ShipmentList {
	return domain.ShipmentList{
		ListID:    m.ListID,
		UserID:    m.UserID,
		Name:      m.Name,
		Status:    domain.ListStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainShipmentListSlice converts a slice of model ShipmentLists to domain ShipmentLists.
func ToDomainShipmentListSlice(ms []models.ShipmentList) []domain.ShipmentList {
	ds := make([]domain.ShipmentList, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShipmentList(m)
	}
	return ds
}
