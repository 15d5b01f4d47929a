package entities

import "time"

// GiftLink represents a shareable gift link row in the database
type GiftLink struct {
	ID        string    `json:"id"` // UUID
	UserID    string    `json:"user_id"`
	SessionID *string   `json:"session_id,omitempty"`
	LinkToken string    `json:"link_token"` // Server-generated, unique
	Title     *string   `json:"title,omitempty"`
	Message   *string   `json:"message,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
