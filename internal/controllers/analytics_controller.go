package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"linkly-be/internal/service"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// Overview handles GET /api/v1/analytics/overview
func (ac *AnalyticsController) Overview(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	overview, err := ac.analyticsService.Overview(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch overview statistics",
		})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// ListLinks handles GET /api/v1/analytics/urls
func (ac *AnalyticsController) ListLinks(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	links, err := ac.analyticsService.ListLinks(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch URLs",
		})
		return
	}

	c.JSON(http.StatusOK, links)
}

// LinkDetail handles GET /api/v1/analytics/url/:shortCode. A code that does
// not exist and a code owned by someone else get the same 404.
func (ac *AnalyticsController) LinkDetail(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	detail, err := ac.analyticsService.LinkDetail(c.Request.Context(), userID, c.Param("shortCode"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "URL not found or unauthorized",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch URL statistics",
		})
		return
	}

	c.JSON(http.StatusOK, detail)
}
