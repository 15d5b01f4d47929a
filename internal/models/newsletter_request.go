package models

// NewsletterSignupRequest represents the request body for a newsletter signup
type NewsletterSignupRequest struct {
	Email  string  `json:"email" binding:"required,email"`
	Source *string `json:"source,omitempty"`
}

// NewsletterSignupResponse acknowledges a signup. Email delivery is
// best-effort, so its outcome is reported but never fails the request.
type NewsletterSignupResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Source    string `json:"source"`
	EmailSent bool   `json:"email_sent"`
}
