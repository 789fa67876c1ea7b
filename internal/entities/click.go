package entities

import "time"

// ClickEvent represents one recorded redirect of a short link.
// All request metadata is optional; absent fields stay NULL in the database.
type ClickEvent struct {
	ID        string    `json:"id"` // UUID
	URLID     string    `json:"url_id"`
	ClickedAt time.Time `json:"clicked_at"`
	IPAddress *string   `json:"ip_address,omitempty"`
	UserAgent *string   `json:"user_agent,omitempty"`
	Referer   *string   `json:"referer,omitempty"`
	Country   *string   `json:"country,omitempty"`
	City      *string   `json:"city,omitempty"`
}

// ClickMetadata carries the request-derived fields of a redirect before the
// event is attributed to a link. Country and city arrive pre-resolved from an
// upstream enrichment proxy; this service never does geo lookups itself.
type ClickMetadata struct {
	IPAddress *string
	UserAgent *string
	Referer   *string
	Country   *string
	City      *string
}

// CountryCount is one row of a per-country click aggregate.
type CountryCount struct {
	Country string `json:"country"`
	Clicks  int64  `json:"clicks"`
}
