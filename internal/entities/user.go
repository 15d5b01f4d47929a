package entities

import "time"

// User represents a user row in the database
type User struct {
	ID               string     `json:"id"` // UUID
	Email            string     `json:"email"`
	PasswordHash     *string    `json:"-"` // Never expose the hash in JSON; nullable for lazily-created users
	FirstName        *string    `json:"first_name,omitempty"`
	LastName         *string    `json:"last_name,omitempty"`
	FullName         *string    `json:"full_name,omitempty"`
	SubscriptionTier string     `json:"subscription_tier"`
	DateOfBirth      *string    `json:"date_of_birth,omitempty"`
	GDPRConsent      bool       `json:"gdpr_consent"`
	EmailVerified    bool       `json:"email_verified"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
