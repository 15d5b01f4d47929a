package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/griffin1995/gift-sync/internal/service"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// Track handles POST /api/v1/analytics/track. Events are logged and always
// acknowledged; nothing is persisted.
func (ac *AnalyticsController) Track(c *gin.Context) {
	var event map[string]interface{}
	if err := c.ShouldBindJSON(&event); err != nil {
		bindError(c, err)
		return
	}

	c.JSON(http.StatusOK, ac.analyticsService.Track(c.Request.Context(), event))
}

// Dashboard handles GET /api/v1/analytics/dashboard
func (ac *AnalyticsController) Dashboard(c *gin.Context) {
	dashboard, err := ac.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
