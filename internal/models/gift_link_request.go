package models

// CreateGiftLinkRequest represents the request body for creating a gift link.
// There is deliberately no token field: the link token is always generated
// server-side, never client-supplied.
type CreateGiftLinkRequest struct {
	UserID    string  `json:"user_id" binding:"required,uuid"`
	SessionID *string `json:"session_id,omitempty" binding:"omitempty,uuid"`
	Title     *string `json:"title,omitempty"`
	Message   *string `json:"message,omitempty"`
}
