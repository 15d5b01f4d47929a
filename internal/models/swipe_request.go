package models

// CreateSwipeSessionRequest represents the request body for starting a session
type CreateSwipeSessionRequest struct {
	UserID   string  `json:"user_id" binding:"required,uuid"`
	Platform *string `json:"platform,omitempty"`
}

// CreateSwipeInteractionRequest represents the request body for recording a swipe
type CreateSwipeInteractionRequest struct {
	SessionID string `json:"session_id" binding:"required,uuid"`
	ProductID string `json:"product_id" binding:"required,uuid"`
	Direction string `json:"direction" binding:"required,oneof=left right up down"`
}
