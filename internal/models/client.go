package models

import "time"

// Client is the database row shape for a client.
type Client struct {
	ClientID  string    `db:"client_id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Document  string    `db:"document"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}
