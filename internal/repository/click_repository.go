package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"linkly-be/internal/entities"
)

// ClickRepository defines the interface for click event database operations
type ClickRepository interface {
	Insert(ctx context.Context, urlID string, clickedAt time.Time, meta entities.ClickMetadata) error
	RecentByURL(ctx context.Context, urlID string, since time.Time) ([]*entities.ClickEvent, error)
	TopCountriesByURL(ctx context.Context, urlID string, limit int) ([]entities.CountryCount, error)
	TopCountryByUser(ctx context.Context, userID string) (*entities.CountryCount, error)
}

type clickRepository struct {
	db *sql.DB
}

// NewClickRepository creates a new click repository
func NewClickRepository(db *sql.DB) ClickRepository {
	return &clickRepository{db: db}
}

// Insert appends one click event. Missing metadata fields are stored as NULL,
// never fabricated. clickedAt is the time the redirect was served, not the
// time the event was drained from the queue.
func (r *clickRepository) Insert(ctx context.Context, urlID string, clickedAt time.Time, meta entities.ClickMetadata) error {
	query := `
		INSERT INTO url_clicks (url_id, clicked_at, ip_address, user_agent, referer, country, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		urlID,
		clickedAt.UTC(),
		meta.IPAddress,
		meta.UserAgent,
		meta.Referer,
		meta.Country,
		meta.City,
	)
	if err != nil {
		return fmt.Errorf("failed to insert click: %w", err)
	}

	return nil
}

// RecentByURL returns the click events for a link since the given time,
// newest first. Timestamps, not insertion order, define recency.
func (r *clickRepository) RecentByURL(ctx context.Context, urlID string, since time.Time) ([]*entities.ClickEvent, error) {
	query := `
		SELECT id, url_id, clicked_at, ip_address, user_agent, referer, country, city
		FROM url_clicks
		WHERE url_id = $1 AND clicked_at >= $2
		ORDER BY clicked_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, urlID, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to get recent clicks: %w", err)
	}
	defer rows.Close()

	var events []*entities.ClickEvent
	for rows.Next() {
		var ev entities.ClickEvent
		err := rows.Scan(
			&ev.ID,
			&ev.URLID,
			&ev.ClickedAt,
			&ev.IPAddress,
			&ev.UserAgent,
			&ev.Referer,
			&ev.Country,
			&ev.City,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan click: %w", err)
		}
		events = append(events, &ev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clicks: %w", err)
	}

	return events, nil
}

// TopCountriesByURL ranks countries by click count for one link. NULL
// countries are reported as "Unknown". Ties are broken lexicographically
// by country so the ranking is deterministic.
func (r *clickRepository) TopCountriesByURL(ctx context.Context, urlID string, limit int) ([]entities.CountryCount, error) {
	query := `
		SELECT COALESCE(country, 'Unknown') AS country, COUNT(*) AS clicks
		FROM url_clicks
		WHERE url_id = $1
		GROUP BY 1
		ORDER BY clicks DESC, country ASC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, urlID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top countries: %w", err)
	}
	defer rows.Close()

	var counts []entities.CountryCount
	for rows.Next() {
		var cc entities.CountryCount
		if err := rows.Scan(&cc.Country, &cc.Clicks); err != nil {
			return nil, fmt.Errorf("failed to scan country count: %w", err)
		}
		counts = append(counts, cc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating country counts: %w", err)
	}

	return counts, nil
}

// TopCountryByUser returns the country with the most click events across all
// of a user's links, or ErrNotFound when the user has no recorded clicks.
// Same tie break as TopCountriesByURL.
func (r *clickRepository) TopCountryByUser(ctx context.Context, userID string) (*entities.CountryCount, error) {
	query := `
		SELECT COALESCE(c.country, 'Unknown') AS country, COUNT(*) AS clicks
		FROM url_clicks c
		INNER JOIN urls u ON c.url_id = u.id
		WHERE u.user_id = $1
		GROUP BY 1
		ORDER BY clicks DESC, country ASC
		LIMIT 1
	`

	var cc entities.CountryCount
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&cc.Country, &cc.Clicks)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get top country: %w", err)
	}

	return &cc, nil
}
