package models

import "time"

// DashboardResponse carries approximate row counts for the admin dashboard.
// Each count is capped at the per-query row limit, so values are exact only
// below that cap.
type DashboardResponse struct {
	TotalCategories   int       `json:"total_categories"`
	TotalProducts     int       `json:"total_products"`
	TotalSessions     int       `json:"total_sessions"`
	TotalInteractions int       `json:"total_interactions"`
	Status            string    `json:"status"`
	LastUpdated       time.Time `json:"last_updated"`
}

// TrackResponse acknowledges an analytics event
type TrackResponse struct {
	Status string `json:"status"`
	Event  string `json:"event"`
}
