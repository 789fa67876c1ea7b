package service

import (
	"context"
	"errors"
	"math"
	"time"

	"linkly-be/internal/entities"
	"linkly-be/internal/models"
	"linkly-be/internal/repository"
)

// recentWindow is how far back the per-link click history reaches.
const recentWindow = 30 * 24 * time.Hour

// topCountryLimit caps the per-link country ranking.
const topCountryLimit = 5

// AnalyticsService computes owner-scoped traffic statistics. Every operation
// takes the caller's user ID and never returns another owner's data.
type AnalyticsService interface {
	Overview(ctx context.Context, userID string) (*models.OverviewResponse, error)
	ListLinks(ctx context.Context, userID string) ([]*models.LinkStatsResponse, error)
	LinkDetail(ctx context.Context, userID, shortCode string) (*models.LinkDetailResponse, error)
}

type analyticsService struct {
	links  repository.LinkRepository
	clicks repository.ClickRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(links repository.LinkRepository, clicks repository.ClickRepository) AnalyticsService {
	return &analyticsService{
		links:  links,
		clicks: clicks,
	}
}

// Overview returns the dashboard statistics for a user. Total clicks come
// from the denormalized per-link counters, which can trail the event log by
// whatever is still queued in the recorder; the overview favors one cheap
// SUM over scanning the event table.
func (s *analyticsService) Overview(ctx context.Context, userID string) (*models.OverviewResponse, error) {
	totalClicks, err := s.links.SumClicksByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	activeLinks, err := s.links.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	top := models.TopLocation{Country: "Unknown", Percentage: 0}
	topCountry, err := s.clicks.TopCountryByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if topCountry != nil {
		top.Country = topCountry.Country
		if totalClicks > 0 {
			top.Percentage = int(math.Round(float64(topCountry.Clicks) / float64(totalClicks) * 100))
		}
	}

	return &models.OverviewResponse{
		TotalClicks: totalClicks,
		ActiveLinks: activeLinks,
		TopLocation: top,
	}, nil
}

// ListLinks returns all of a user's links with counters, newest first.
func (s *analyticsService) ListLinks(ctx context.Context, userID string) ([]*models.LinkStatsResponse, error) {
	links, err := s.links.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.LinkStatsResponse, len(links))
	for i, link := range links {
		responses[i] = linkStats(link)
	}

	return responses, nil
}

// LinkDetail returns one link with its 30-day click history (newest first)
// and top five countries. A code owned by someone else yields the same
// ErrNotFound as a code that does not exist.
func (s *analyticsService) LinkDetail(ctx context.Context, userID, shortCode string) (*models.LinkDetailResponse, error) {
	link, err := s.links.GetByUserAndCode(ctx, userID, shortCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	since := time.Now().Add(-recentWindow)
	recent, err := s.clicks.RecentByURL(ctx, link.ID, since)
	if err != nil {
		return nil, err
	}

	topCountries, err := s.clicks.TopCountriesByURL(ctx, link.ID, topCountryLimit)
	if err != nil {
		return nil, err
	}

	if recent == nil {
		recent = []*entities.ClickEvent{}
	}
	if topCountries == nil {
		topCountries = []entities.CountryCount{}
	}

	return &models.LinkDetailResponse{
		LinkStatsResponse: *linkStats(link),
		RecentClicks:      recent,
		TopCountries:      topCountries,
	}, nil
}

func linkStats(link *entities.Link) *models.LinkStatsResponse {
	return &models.LinkStatsResponse{
		ID:            link.ID,
		ShortCode:     link.ShortCode,
		TargetURL:     link.TargetURL,
		Clicks:        link.Clicks,
		LastClickedAt: link.LastClickedAt,
		CreatedAt:     link.CreatedAt,
	}
}
