package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/service"
)

type NewsletterController struct {
	newsletterService service.NewsletterService
}

func NewNewsletterController(newsletterService service.NewsletterService) *NewsletterController {
	return &NewsletterController{
		newsletterService: newsletterService,
	}
}

// Signup handles POST /api/v1/newsletter/signup
func (nc *NewsletterController) Signup(c *gin.Context) {
	var req models.NewsletterSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	response, err := nc.newsletterService.Signup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
