package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"linkly-be/internal/cache"
	"linkly-be/internal/entities"
	"linkly-be/internal/models"
	"linkly-be/internal/repository"
)

// generateAttempts bounds how many fresh codes are tried when generated
// codes collide before the request fails with ErrGenerationExhausted.
const generateAttempts = 5

// LinkService defines the interface for link business logic
type LinkService interface {
	Shorten(ctx context.Context, req *models.ShortenRequest, userID, baseURL string) (*models.ShortenResponse, error)
	Resolve(ctx context.Context, shortCode string) (string, error)
}

type linkService struct {
	repo           repository.LinkRepository
	cache          cache.Cache
	resolveTimeout time.Duration
}

// NewLinkService creates a new link service. cacheClient may be nil, in which
// case every resolve goes straight to the database.
func NewLinkService(repo repository.LinkRepository, cacheClient cache.Cache, resolveTimeout time.Duration) LinkService {
	return &linkService{
		repo:           repo,
		cache:          cacheClient,
		resolveTimeout: resolveTimeout,
	}
}

// validateTargetURL accepts only well-formed absolute http(s) URLs.
func validateTargetURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDestination, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ErrInvalidDestination
	}
	return nil
}

// Shorten creates a new short link. A custom code is validated and inserted
// as-is; a collision surfaces as ErrCodeAlreadyExists. Without a custom code
// the service generates codes and retries on collision, relying on the
// database unique constraint rather than a racy existence pre-check.
func (s *linkService) Shorten(ctx context.Context, req *models.ShortenRequest, userID, baseURL string) (*models.ShortenResponse, error) {
	if err := validateTargetURL(req.URL); err != nil {
		return nil, err
	}

	var link *entities.Link

	if req.Code != nil && strings.TrimSpace(*req.Code) != "" {
		customCode := strings.TrimSpace(*req.Code)
		if err := validateCustomShortCode(customCode); err != nil {
			return nil, err
		}

		created, err := s.repo.Create(ctx, customCode, req.URL, userID)
		if errors.Is(err, repository.ErrCodeTaken) {
			return nil, fmt.Errorf("%w: %q", ErrCodeAlreadyExists, customCode)
		}
		if err != nil {
			return nil, err
		}
		link = created
	} else {
		backoff := retry.WithMaxRetries(generateAttempts-1, retry.NewConstant(10*time.Millisecond))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			code, genErr := generateShortCode()
			if genErr != nil {
				return genErr
			}

			created, createErr := s.repo.Create(ctx, code, req.URL, userID)
			if errors.Is(createErr, repository.ErrCodeTaken) {
				return retry.RetryableError(createErr)
			}
			if createErr != nil {
				return createErr
			}

			link = created
			return nil
		})
		if errors.Is(err, repository.ErrCodeTaken) {
			return nil, fmt.Errorf("%w after %d attempts", ErrGenerationExhausted, generateAttempts)
		}
		if err != nil {
			return nil, err
		}
	}

	// Prime the resolve cache so the first redirect skips the database.
	if s.cache != nil {
		if err := s.cache.Set(ctx, resolveCacheKey(link.ShortCode), link.TargetURL, time.Hour); err != nil {
			log.Printf("Warning: failed to cache short code %s: %v", link.ShortCode, err)
		}
	}

	return &models.ShortenResponse{
		ID:        link.ID,
		ShortCode: link.ShortCode,
		TargetURL: link.TargetURL,
		UserID:    link.UserID,
		ShortURL:  fmt.Sprintf("%s/short/%s", baseURL, link.ShortCode),
		CreatedAt: link.CreatedAt,
	}, nil
}

// Resolve translates a short code into its destination with a single lookup.
// This is the hot path: the store query is bounded by resolveTimeout and a
// timeout fails closed as ErrUnavailable instead of hanging the redirect.
// Click recording is the caller's side effect, not part of resolution.
func (s *linkService) Resolve(ctx context.Context, shortCode string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.resolveTimeout)
	defer cancel()

	if s.cache != nil {
		target, err := s.cache.Get(ctx, resolveCacheKey(shortCode))
		if err == nil && target != "" {
			return target, nil
		}
		if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("Warning: cache lookup failed for %s: %v", shortCode, err)
		}
	}

	link, err := s.repo.FindByShortCode(ctx, shortCode)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrUnavailable
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, resolveCacheKey(shortCode), link.TargetURL, time.Hour); err != nil {
			log.Printf("Warning: failed to cache short code %s: %v", shortCode, err)
		}
	}

	return link.TargetURL, nil
}

func resolveCacheKey(shortCode string) string {
	return "url:" + shortCode
}
