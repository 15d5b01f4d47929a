package models

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	CategoryID   *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description,omitempty"`
	Price        float64 `json:"price" binding:"required,gte=0"`
	Currency     *string `json:"currency,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	AffiliateURL *string `json:"affiliate_url,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// ProductFilters carries the supported and accepted-but-unapplied listing
// predicates. MinPrice, MaxPrice and Search are bound and validated but are
// documented no-ops: the upstream contract accepts them without applying
// them, and clients depend on that.
type ProductFilters struct {
	CategoryID *string
	MinPrice   *float64 // no-op
	MaxPrice   *float64 // no-op
	Search     *string  // no-op
	ActiveOnly bool
	Limit      int
}
