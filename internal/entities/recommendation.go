package entities

import (
	"encoding/json"
	"time"
)

// Recommendation is an opaque recommendation record. The payload is stored
// and returned verbatim; no scoring happens in this service.
type Recommendation struct {
	ID         string          `json:"id"` // UUID
	UserID     string          `json:"user_id"`
	SessionID  *string         `json:"session_id,omitempty"`
	Payload    json.RawMessage `json:"payload"`
	Confidence *float64        `json:"confidence,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
