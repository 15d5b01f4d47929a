package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/service"
)

const (
	maxInteractionLimit     = 200
	defaultInteractionLimit = 50
)

type SwipeController struct {
	swipeService service.SwipeService
}

func NewSwipeController(swipeService service.SwipeService) *SwipeController {
	return &SwipeController{
		swipeService: swipeService,
	}
}

// CreateSession handles POST /api/v1/swipe-sessions
func (sc *SwipeController) CreateSession(c *gin.Context) {
	var req models.CreateSwipeSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	session, err := sc.swipeService.CreateSession(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// GetSession handles GET /api/v1/swipe-sessions/:id
func (sc *SwipeController) GetSession(c *gin.Context) {
	session, err := sc.swipeService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// CreateInteraction handles POST /api/v1/swipe-interactions
func (sc *SwipeController) CreateInteraction(c *gin.Context) {
	var req models.CreateSwipeInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	interaction, err := sc.swipeService.CreateInteraction(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, interaction)
}

// ListSessionInteractions handles GET /api/v1/sessions/:id/interactions
func (sc *SwipeController) ListSessionInteractions(c *gin.Context) {
	limit, ok := parseLimit(c, defaultInteractionLimit, maxInteractionLimit)
	if !ok {
		return
	}

	interactions, err := sc.swipeService.ListSessionInteractions(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if interactions == nil {
		interactions = []*entities.SwipeInteraction{}
	}

	c.JSON(http.StatusOK, interactions)
}
