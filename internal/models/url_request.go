package models

// ShortenRequest represents the request body for creating a short link
type ShortenRequest struct {
	URL  string  `json:"url" binding:"required,url"` // Gin validation: required and must be valid URL
	Code *string `json:"code,omitempty"`             // Optional custom short code
}
