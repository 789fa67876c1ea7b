package models

import (
	"time"

	"linkly-be/internal/entities"
)

// ShortenResponse represents the response after creating a short link
type ShortenResponse struct {
	ID        string    `json:"id"`
	ShortCode string    `json:"short_code"`
	TargetURL string    `json:"target_url"`
	UserID    string    `json:"user_id"`
	ShortURL  string    `json:"short_url"` // Full short URL (base URL + short code)
	CreatedAt time.Time `json:"created_at"`
}

// LinkStatsResponse represents one link with its counters
type LinkStatsResponse struct {
	ID            string     `json:"id"`
	ShortCode     string     `json:"short_code"`
	TargetURL     string     `json:"target_url"`
	Clicks        int64      `json:"clicks"`
	LastClickedAt *time.Time `json:"last_clicked_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// TopLocation is the most common click origin for an owner's links
type TopLocation struct {
	Country    string `json:"country"`
	Percentage int    `json:"percentage"`
}

// OverviewResponse represents the dashboard overview statistics
type OverviewResponse struct {
	TotalClicks int64       `json:"total_clicks"`
	ActiveLinks int         `json:"active_links"`
	TopLocation TopLocation `json:"top_location"`
}

// LinkDetailResponse represents detailed statistics for a single link
type LinkDetailResponse struct {
	LinkStatsResponse
	RecentClicks []*entities.ClickEvent  `json:"recent_clicks"`
	TopCountries []entities.CountryCount `json:"top_countries"`
}
