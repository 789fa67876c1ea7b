package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"linkly-be/internal/clicks"
	"linkly-be/internal/entities"
	"linkly-be/internal/middleware"
	"linkly-be/internal/models"
	"linkly-be/internal/service"
)

type ShortenerController struct {
	linkService service.LinkService
	recorder    *clicks.Recorder
	baseURL     string
}

func NewShortenerController(linkService service.LinkService, recorder *clicks.Recorder, baseURL string) *ShortenerController {
	return &ShortenerController{
		linkService: linkService,
		recorder:    recorder,
		baseURL:     baseURL,
	}
}

// Shorten handles POST /api/v1/shorten
func (sc *ShortenerController) Shorten(c *gin.Context) {
	var req models.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	response, err := sc.linkService.Shorten(c.Request.Context(), &req, userID, sc.baseURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDestination), errors.Is(err, service.ErrInvalidShortCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrCodeAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrGenerationExhausted):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to shorten URL"})
		}
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Redirect handles GET /short/:shortCode. The redirect is issued as soon as
// the code resolves; click recording happens off the response path and its
// failures never reach the client.
func (sc *ShortenerController) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")

	targetURL, err := sc.linkService.Resolve(c.Request.Context(), shortCode)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Short URL not found",
			})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service temporarily unavailable",
		})
		return
	}

	sc.recorder.Record(shortCode, clickMetadata(c))

	// 302 rather than 301 so browsers keep coming back through us and the
	// analytics trail stays complete.
	c.Redirect(http.StatusFound, targetURL)
}

// clickMetadata pulls the request-derived event fields. Country and city are
// trusted from the enrichment proxy's headers; absent values stay nil.
func clickMetadata(c *gin.Context) entities.ClickMetadata {
	return entities.ClickMetadata{
		IPAddress: optional(c.ClientIP()),
		UserAgent: optional(c.Request.UserAgent()),
		Referer:   optional(c.Request.Referer()),
		Country:   optional(c.GetHeader("CF-IPCountry")),
		City:      optional(c.GetHeader("CF-IPCity")),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// authenticatedUserID reads the user ID placed in the context by the auth
// middleware, rejecting the request when it is missing.
func authenticatedUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		c.Abort()
		return "", false
	}
	return value.(string), true
}
