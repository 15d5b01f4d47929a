package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/service"
)

type GiftLinkController struct {
	linkService service.GiftLinkService
}

func NewGiftLinkController(linkService service.GiftLinkService) *GiftLinkController {
	return &GiftLinkController{
		linkService: linkService,
	}
}

// Create handles POST /api/v1/gift-links
func (gc *GiftLinkController) Create(c *gin.Context) {
	var req models.CreateGiftLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	link, err := gc.linkService.CreateLink(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// GetByToken handles GET /api/v1/gift-links/:token
func (gc *GiftLinkController) GetByToken(c *gin.Context) {
	link, err := gc.linkService.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// QRCode handles GET /api/v1/gift-links/:token/qrcode - renders a QR code
// PNG for the link's share URL
func (gc *GiftLinkController) QRCode(c *gin.Context) {
	token := c.Param("token")

	// Only active links get a QR code
	link, err := gc.linkService.GetByToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	shareURL := gc.linkService.ShareURL(link.LinkToken)

	qr, err := qrcode.New(shareURL, qrcode.Medium)
	if err != nil {
		respondError(c, err)
		return
	}

	png, err := qr.PNG(256)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", png)
}
