package domain

import "time"

// EventType classifies entries in a contract's audit trail.
type EventType string

const (
	EventCreated         EventType = "created"
	EventPayment         EventType = "payment"
	EventStatusChange    EventType = "status_change"
	EventAddedToList     EventType = "added_to_list"
	EventRemovedFromList EventType = "removed_from_list"
	EventListCompleted   EventType = "list_completed"
	EventReturned        EventType = "returned"
)

// ContractEvent is one entry of a contract's append-only audit trail.
// Events are never mutated or deleted by normal flows; deleting a payment
// does not remove the event that recorded it.
type ContractEvent struct {
	EventID     string    `json:"eventID"`
	UserID      string    `json:"userID"`
	ContractID  string    `json:"contractID"`
	Type        EventType `json:"type"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
