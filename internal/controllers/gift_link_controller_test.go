package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/errs"
	"github.com/griffin1995/gift-sync/internal/models"
)

type stubGiftLinkService struct {
	links map[string]*entities.GiftLink
}

func (s *stubGiftLinkService) CreateLink(ctx context.Context, req *models.CreateGiftLinkRequest) (*entities.GiftLink, error) {
	link := &entities.GiftLink{
		ID:        "gl-1",
		UserID:    req.UserID,
		LinkToken: "11111111-2222-3333-4444-555555555555",
		IsActive:  true,
	}
	s.links[link.LinkToken] = link
	return link, nil
}

func (s *stubGiftLinkService) GetByToken(ctx context.Context, token string) (*entities.GiftLink, error) {
	link, ok := s.links[token]
	if !ok {
		return nil, fmt.Errorf("gift link %s not found in database: %w", token, errs.ErrNotFound)
	}
	if !link.IsActive {
		return nil, fmt.Errorf("gift link %s exists but is not active: %w", token, errs.ErrNotFound)
	}
	return link, nil
}

func (s *stubGiftLinkService) ShareURL(token string) string {
	return "https://prznt.app/gift/" + token
}

func newGiftLinkRouter(svc *stubGiftLinkService) *gin.Engine {
	gc := NewGiftLinkController(svc)
	router := gin.New()
	router.POST("/api/v1/gift-links", gc.Create)
	router.GET("/api/v1/gift-links/:token", gc.GetByToken)
	router.GET("/api/v1/gift-links/:token/qrcode", gc.QRCode)
	return router
}

func TestCreateGiftLinkIgnoresClientToken(t *testing.T) {
	svc := &stubGiftLinkService{links: make(map[string]*entities.GiftLink)}
	router := newGiftLinkRouter(svc)

	body := `{"user_id":"22222222-2222-2222-2222-222222222222","link_token":"client-chosen"}`
	w := performRequest(router, http.MethodPost, "/api/v1/gift-links", body)
	require.Equal(t, http.StatusOK, w.Code)

	var link entities.GiftLink
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &link))
	assert.NotEqual(t, "client-chosen", link.LinkToken)
	assert.NotEmpty(t, link.LinkToken)
}

func TestGetGiftLinkDistinctNotFoundMessages(t *testing.T) {
	svc := &stubGiftLinkService{links: make(map[string]*entities.GiftLink)}
	router := newGiftLinkRouter(svc)

	w := performRequest(router, http.MethodPost, "/api/v1/gift-links", `{"user_id":"22222222-2222-2222-2222-222222222222"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var link entities.GiftLink
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &link))
	svc.links[link.LinkToken].IsActive = false

	missing := performRequest(router, http.MethodGet, "/api/v1/gift-links/unknown-token", "")
	inactive := performRequest(router, http.MethodGet, "/api/v1/gift-links/"+link.LinkToken, "")

	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, http.StatusNotFound, inactive.Code)
	assert.NotEqual(t, missing.Body.String(), inactive.Body.String())
	assert.Contains(t, missing.Body.String(), "not found in database")
	assert.Contains(t, inactive.Body.String(), "exists but is not active")
}

func TestGiftLinkQRCodeReturnsPNG(t *testing.T) {
	svc := &stubGiftLinkService{links: make(map[string]*entities.GiftLink)}
	router := newGiftLinkRouter(svc)

	w := performRequest(router, http.MethodPost, "/api/v1/gift-links", `{"user_id":"22222222-2222-2222-2222-222222222222"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var link entities.GiftLink
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &link))

	qr := performRequest(router, http.MethodGet, "/api/v1/gift-links/"+link.LinkToken+"/qrcode", "")
	assert.Equal(t, http.StatusOK, qr.Code)
	assert.Equal(t, "image/png", qr.Header().Get("Content-Type"))
	assert.NotEmpty(t, qr.Body.Bytes())
}
