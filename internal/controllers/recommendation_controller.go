package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/service"
)

const (
	maxRecommendationLimit     = 50
	defaultRecommendationLimit = 10
)

type RecommendationController struct {
	recService service.RecommendationService
}

func NewRecommendationController(recService service.RecommendationService) *RecommendationController {
	return &RecommendationController{
		recService: recService,
	}
}

// Create handles POST /api/v1/recommendations
func (rc *RecommendationController) Create(c *gin.Context) {
	var req models.CreateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rec, err := rc.recService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ListForUser handles GET /api/v1/users/:id/recommendations
func (rc *RecommendationController) ListForUser(c *gin.Context) {
	limit, ok := parseLimit(c, defaultRecommendationLimit, maxRecommendationLimit)
	if !ok {
		return
	}

	var sessionID *string
	if v := c.Query("session_id"); v != "" {
		sessionID = &v
	}

	recs, err := rc.recService.ListForUser(c.Request.Context(), c.Param("id"), sessionID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if recs == nil {
		recs = []*entities.Recommendation{}
	}

	c.JSON(http.StatusOK, recs)
}
