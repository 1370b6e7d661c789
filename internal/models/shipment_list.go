package models

import "time"

// ListStatus mirrors domain.ListStatus at the persistence boundary.
type ListStatus string

// ShipmentList is the database row shape for a shipment list.
// items_count is not a column; it is recomputed from contracts.list_id.
type ShipmentList struct {
	ListID    string     `db:"list_id"`
	UserID    string     `db:"user_id"`
	Name      string     `db:"name"`
	Status    ListStatus `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
}
