package domain

import "time"

// Client is a person or company registered with the bureau.
// A client has no status of its own; status is derived from its contracts.
type Client struct {
	ClientID  string    `json:"clientID"`
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	Document  string    `json:"document"` // CPF or CNPJ, stored as entered
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
