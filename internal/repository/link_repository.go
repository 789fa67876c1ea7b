package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"linkly-be/internal/entities"
)

// LinkRepository defines the interface for link database operations
type LinkRepository interface {
	Create(ctx context.Context, shortCode, targetURL, userID string) (*entities.Link, error)
	FindByShortCode(ctx context.Context, shortCode string) (*entities.Link, error)
	GetByUserAndCode(ctx context.Context, userID, shortCode string) (*entities.Link, error)
	GetByUserID(ctx context.Context, userID string) ([]*entities.Link, error)
	IncrementClicks(ctx context.Context, shortCode string) error
	CountByUserID(ctx context.Context, userID string) (int, error)
	SumClicksByUserID(ctx context.Context, userID string) (int64, error)
}

type linkRepository struct {
	db *sql.DB
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *sql.DB) LinkRepository {
	return &linkRepository{db: db}
}

const linkColumns = "id, short_code, target_url, user_id, clicks, last_clicked_at, created_at, updated_at"

func scanLink(row *sql.Row) (*entities.Link, error) {
	var link entities.Link
	err := row.Scan(
		&link.ID,
		&link.ShortCode,
		&link.TargetURL,
		&link.UserID,
		&link.Clicks,
		&link.LastClickedAt,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Create inserts a new link. The unique constraint on short_code is the only
// uniqueness check; a violation is translated into ErrCodeTaken so the caller
// can distinguish a collision from a store failure.
func (r *linkRepository) Create(ctx context.Context, shortCode, targetURL, userID string) (*entities.Link, error) {
	query := `
		INSERT INTO urls (short_code, target_url, user_id)
		VALUES ($1, $2, $3)
		RETURNING ` + linkColumns

	link, err := scanLink(r.db.QueryRowContext(ctx, query, shortCode, targetURL, userID))
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("create link %q: %w", shortCode, ErrCodeTaken)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return link, nil
}

// FindByShortCode finds a link by its short code
func (r *linkRepository) FindByShortCode(ctx context.Context, shortCode string) (*entities.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM urls WHERE short_code = $1`

	link, err := scanLink(r.db.QueryRowContext(ctx, query, shortCode))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find link: %w", err)
	}

	return link, nil
}

// GetByUserAndCode finds a link by short code scoped to its owner. A link
// belonging to a different user yields ErrNotFound, identical to a missing
// code, so callers cannot probe for other users' links.
func (r *linkRepository) GetByUserAndCode(ctx context.Context, userID, shortCode string) (*entities.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM urls WHERE short_code = $1 AND user_id = $2`

	link, err := scanLink(r.db.QueryRowContext(ctx, query, shortCode, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find link: %w", err)
	}

	return link, nil
}

// GetByUserID retrieves all links for a user, newest first
func (r *linkRepository) GetByUserID(ctx context.Context, userID string) ([]*entities.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM urls WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}
	defer rows.Close()

	var links []*entities.Link
	for rows.Next() {
		var link entities.Link
		err := rows.Scan(
			&link.ID,
			&link.ShortCode,
			&link.TargetURL,
			&link.UserID,
			&link.Clicks,
			&link.LastClickedAt,
			&link.CreatedAt,
			&link.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, &link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating links: %w", err)
	}

	return links, nil
}

// IncrementClicks bumps the denormalized click counter and the last-clicked
// timestamp in a single atomic UPDATE. Concurrent redirects of the same code
// never lose an increment because the addition happens inside the database.
func (r *linkRepository) IncrementClicks(ctx context.Context, shortCode string) error {
	query := `
		UPDATE urls
		SET clicks = clicks + 1, last_clicked_at = now()
		WHERE short_code = $1
	`

	result, err := r.db.ExecContext(ctx, query, shortCode)
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// CountByUserID returns the number of links a user owns
func (r *linkRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM urls WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return count, nil
}

// SumClicksByUserID sums the denormalized click counters across a user's links.
// This is the fast path for the overview; it can trail the event log by the
// few events still in flight through the recorder.
func (r *linkRepository) SumClicksByUserID(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(clicks), 0) FROM urls WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum clicks: %w", err)
	}
	return total, nil
}
