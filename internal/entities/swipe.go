package entities

import "time"

// SwipeSession represents one discovery session for a user
type SwipeSession struct {
	ID          string     `json:"id"` // UUID
	UserID      string     `json:"user_id"`
	Platform    *string    `json:"platform,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SwipeInteraction records a single left/right choice within a session
type SwipeInteraction struct {
	ID        string    `json:"id"` // UUID
	SessionID string    `json:"session_id"`
	ProductID string    `json:"product_id"`
	Direction string    `json:"direction"` // "left" or "right"
	CreatedAt time.Time `json:"created_at"`
}
