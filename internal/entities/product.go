package entities

import "time"

// Product represents a product row in the database
type Product struct {
	ID           string    `json:"id"` // UUID
	CategoryID   *string   `json:"category_id,omitempty"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	ImageURL     *string   `json:"image_url,omitempty"`
	AffiliateURL *string   `json:"affiliate_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
