package domain

import "time"

// ListStatus describes the lifecycle of a shipment list.
type ListStatus string

const (
	ListOpen      ListStatus = "open"
	ListSent      ListStatus = "sent"
	ListCompleted ListStatus = "completed"
)

// ShipmentList is a batch of eligible contracts grouped for bulk submission
// to the downstream clearance process.
//
// ItemsCount is a recomputed projection (count of contracts whose ListID
// matches), never authoritative on its own.
type ShipmentList struct {
	ListID     string     `json:"listID"`
	UserID     string     `json:"userID"`
	Name       string     `json:"name"`
	Status     ListStatus `json:"status"`
	ItemsCount int        `json:"itemsCount"`
	CreatedAt  time.Time  `json:"createdAt"`
}
