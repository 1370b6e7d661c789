package dto

import (
	"time"

	"github.com/limpanome/crm_backend/internal/core/domain"
)

// CreateListRequest defines the data needed to open a shipment list.
// CreatedAt may be backdated for lists migrated from paper records.
type CreateListRequest struct {
	Name      string     `json:"name" binding:"required"`
	CreatedAt *time.Time `json:"createdAt"`
}

// UpdateListRequest renames a shipment list.
type UpdateListRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListResponse defines the data returned for a shipment list.
type ListResponse struct {
	ListID     string            `json:"listID"`
	Name       string            `json:"name"`
	Status     domain.ListStatus `json:"status"`
	ItemsCount int               `json:"itemsCount"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ToListResponse converts a domain.ShipmentList to its response DTO.
func ToListResponse(l domain.ShipmentList) ListResponse {
	return ListResponse{
		ListID:     l.ListID,
		Name:       l.Name,
		Status:     l.Status,
		ItemsCount: l.ItemsCount,
		CreatedAt:  l.CreatedAt,
	}
}

// ToListResponseList converts a slice of domain.ShipmentList to response DTOs.
func ToListResponseList(ls []domain.ShipmentList) []ListResponse {
	out := make([]ListResponse, len(ls))
	for i, l := range ls {
		out[i] = ToListResponse(l)
	}
	return out
}
