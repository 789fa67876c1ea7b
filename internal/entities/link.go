package entities

import "time"

// Link represents a shortened link entity in the database
type Link struct {
	ID            string     `json:"id"` // UUID
	ShortCode     string     `json:"short_code"`
	TargetURL     string     `json:"target_url"`
	UserID        string     `json:"user_id"` // UUID of the owning user
	Clicks        int64      `json:"clicks"`
	LastClickedAt *time.Time `json:"last_clicked_at,omitempty"` // Pointer allows nil (never clicked)
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
