// Package mapping is the single seam translating between the camelCase domain
// model and the lower-snake-case row shapes at the persistence boundary.
// Business logic never sees column naming.
package mapping

import (
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/models"
)

// ToModelClient converts a domain Client to a model Client.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:  d.ClientID,
		UserID:    d.UserID,
		Name:      d.Name,
		Document:  d.Document,
		Phone:     d.Phone,
		Email:     d.Email,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainClient converts a model Client to a domain Client.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:  m.ClientID,
		UserID:    m.UserID,
		Name:      m.Name,
		Document:  m.Document,
		Phone:     m.Phone,
		Email:     m.Email,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients.
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
