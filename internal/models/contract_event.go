package models

import "time"

// ContractEvent is the database row shape for a contract audit event.
type ContractEvent struct {
	EventID     string    `db:"event_id"`
	UserID      string    `db:"user_id"`
	ContractID  string    `db:"contract_id"`
	Type        string    `db:"type"`
	Description string    `db:"description"`
	Date        time.Time `db:"date"`
}
