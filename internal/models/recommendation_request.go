package models

import "encoding/json"

// CreateRecommendationRequest represents the request body for storing a
// recommendation record. The payload is opaque to this service.
type CreateRecommendationRequest struct {
	UserID     string          `json:"user_id" binding:"required,uuid"`
	SessionID  *string         `json:"session_id,omitempty" binding:"omitempty,uuid"`
	Payload    json.RawMessage `json:"payload" binding:"required"`
	Confidence *float64        `json:"confidence,omitempty" binding:"omitempty,gte=0,lte=1"`
}
