package dto

import (
	"time"

	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/core/store"
)

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Notes    string `json:"notes"`
}

// ToNewClient converts the request into a store input.
func (r CreateClientRequest) ToNewClient() store.NewClient {
	return store.NewClient{
		Name:     r.Name,
		Document: r.Document,
		Phone:    r.Phone,
		Email:    r.Email,
		Notes:    r.Notes,
	}
}

// UpdateClientRequest defines a partial client edit. Pointers distinguish
// "not provided" from zero values.
type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Document *string `json:"document"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Notes    *string `json:"notes"`
}

// ToClientPatch converts the request into a store patch.
func (r UpdateClientRequest) ToClientPatch() store.ClientPatch {
	return store.ClientPatch{
		Name:     r.Name,
		Document: r.Document,
		Phone:    r.Phone,
		Email:    r.Email,
		Notes:    r.Notes,
	}
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID  string    `json:"clientID"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to its response DTO.
func ToClientResponse(c domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Document:  c.Document,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

// ToClientResponseList converts a slice of domain.Client to response DTOs.
func ToClientResponseList(cs []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(cs))
	for i, c := range cs {
		out[i] = ToClientResponse(c)
	}
	return out
}
