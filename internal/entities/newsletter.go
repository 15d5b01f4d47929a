package entities

import "time"

// NewsletterSignup represents a newsletter subscription row
type NewsletterSignup struct {
	ID        string    `json:"id"` // UUID
	Email     string    `json:"email"`
	Source    string    `json:"source"` // e.g. "maintenance_page"
	CreatedAt time.Time `json:"created_at"`
}
