package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"linkly-be/internal/clicks"
	"linkly-be/internal/entities"
	"linkly-be/internal/middleware"
	"linkly-be/internal/models"
	"linkly-be/internal/repository"
	"linkly-be/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeLinkService resolves a single known code.
type fakeLinkService struct {
	knownCode  string
	target     string
	shortenErr error
}

func (f *fakeLinkService) Shorten(_ context.Context, req *models.ShortenRequest, userID, baseURL string) (*models.ShortenResponse, error) {
	if f.shortenErr != nil {
		return nil, f.shortenErr
	}
	return &models.ShortenResponse{
		ID:        "11111111-1111-1111-1111-111111111111",
		ShortCode: f.knownCode,
		TargetURL: req.URL,
		UserID:    userID,
		ShortURL:  baseURL + "/short/" + f.knownCode,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeLinkService) Resolve(_ context.Context, shortCode string) (string, error) {
	if shortCode != f.knownCode {
		return "", service.ErrNotFound
	}
	return f.target, nil
}

// countingLinkRepo backs the recorder in handler tests.
type countingLinkRepo struct {
	repository.LinkRepository

	mu         sync.Mutex
	link       *entities.Link
	increments int
}

func (c *countingLinkRepo) FindByShortCode(_ context.Context, shortCode string) (*entities.Link, error) {
	if c.link == nil || c.link.ShortCode != shortCode {
		return nil, repository.ErrNotFound
	}
	return c.link, nil
}

func (c *countingLinkRepo) IncrementClicks(_ context.Context, _ string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.increments++
	return nil
}

type countingClickRepo struct {
	repository.ClickRepository

	mu     sync.Mutex
	events []entities.ClickMetadata
}

func (c *countingClickRepo) Insert(_ context.Context, _ string, _ time.Time, meta entities.ClickMetadata) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, meta)
	return nil
}

func newRedirectRouter(t *testing.T) (*gin.Engine, *countingLinkRepo, *countingClickRepo, *clicks.Recorder) {
	t.Helper()

	linkRepo := &countingLinkRepo{
		link: &entities.Link{ID: "url-1", ShortCode: "promo", TargetURL: "https://example.com/a"},
	}
	clickRepo := &countingClickRepo{}
	recorder := clicks.NewRecorder(linkRepo, clickRepo, 16)
	recorder.Start()

	svc := &fakeLinkService{knownCode: "promo", target: "https://example.com/a"}
	sc := NewShortenerController(svc, recorder, "http://sho.rt")

	router := gin.New()
	router.GET("/short/:shortCode", sc.Redirect)
	return router, linkRepo, clickRepo, recorder
}

func drain(t *testing.T, recorder *clicks.Recorder) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := recorder.Stop(ctx); err != nil {
		t.Fatalf("recorder.Stop() error = %v", err)
	}
}

func TestRedirectKnownCode(t *testing.T) {
	router, linkRepo, clickRepo, recorder := newRedirectRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/short/promo", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Referer", "https://ref.example.com")
	req.Header.Set("CF-IPCountry", "DE")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if loc := rr.Header().Get("Location"); loc != "https://example.com/a" {
		t.Errorf("Location = %q, want %q", loc, "https://example.com/a")
	}

	drain(t, recorder)

	if len(clickRepo.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(clickRepo.events))
	}
	ev := clickRepo.events[0]
	if ev.UserAgent == nil || *ev.UserAgent != "test-agent" {
		t.Errorf("UserAgent not captured from the request")
	}
	if ev.Country == nil || *ev.Country != "DE" {
		t.Errorf("Country not captured from the enrichment header")
	}
	if linkRepo.increments != 1 {
		t.Errorf("increments = %d, want 1", linkRepo.increments)
	}
}

func TestRedirectUnknownCode(t *testing.T) {
	router, _, clickRepo, recorder := newRedirectRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/short/ghost", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "error") {
		t.Errorf("body = %s, want a structured error", rr.Body.String())
	}

	drain(t, recorder)

	if len(clickRepo.events) != 0 {
		t.Errorf("recorded %d events for an unknown code, want 0", len(clickRepo.events))
	}
}

func newShortenRouter(svc service.LinkService) *gin.Engine {
	sc := NewShortenerController(svc, clicks.NewRecorder(&countingLinkRepo{}, &countingClickRepo{}, 1), "http://sho.rt")
	router := gin.New()
	router.POST("/api/v1/shorten", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, "user-1")
	}, sc.Shorten)
	return router
}

func TestShortenStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"conflict", service.ErrCodeAlreadyExists, http.StatusConflict},
		{"invalid destination", service.ErrInvalidDestination, http.StatusBadRequest},
		{"invalid code", service.ErrInvalidShortCode, http.StatusBadRequest},
		{"generation exhausted", service.ErrGenerationExhausted, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newShortenRouter(&fakeLinkService{knownCode: "promo", shortenErr: tt.serviceErr})

			body := strings.NewReader(`{"url": "https://example.com/a", "code": "promo"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/shorten", body)
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

func TestShortenRejectsMalformedBody(t *testing.T) {
	router := newShortenRouter(&fakeLinkService{knownCode: "promo"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shorten", strings.NewReader(`{"url": ""}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
