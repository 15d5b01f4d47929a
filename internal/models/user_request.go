package models

// CreateUserRequest represents the request body for creating a user directly.
// The id is optional; one is generated when absent.
type CreateUserRequest struct {
	ID               *string `json:"id,omitempty" binding:"omitempty,uuid"`
	Email            string  `json:"email" binding:"required,email"`
	FirstName        *string `json:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	SubscriptionTier *string `json:"subscription_tier,omitempty"`
	GDPRConsent      *bool   `json:"gdpr_consent,omitempty"`
}
