package controllers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/griffin1995/gift-sync/internal/errs"
	"github.com/griffin1995/gift-sync/internal/models"
)

type stubAuthService struct {
	register func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	login    func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

func (s *stubAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	return s.register(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	return s.login(ctx, req)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	return nil, fmt.Errorf("invalid refresh token: %w", errs.ErrUnauthorized)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID string) (*models.UserView, error) {
	return &models.UserView{ID: userID}, nil
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	ac := NewAuthController(svc)
	router := gin.New()
	router.POST("/api/v1/auth/register", ac.Register)
	router.POST("/api/v1/auth/login", ac.Login)
	router.POST("/api/v1/auth/logout", ac.Logout)
	return router
}

const validRegisterBody = `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"correct-horse"}`

func TestRegisterDuplicateEmailReturns409(t *testing.T) {
	svc := &stubAuthService{
		register: func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
			return nil, fmt.Errorf("user with this email already exists: %w", errs.ErrAlreadyExists)
		},
	}
	router := newAuthRouter(svc)

	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", validRegisterBody)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterInvalidBodyReturns400(t *testing.T) {
	svc := &stubAuthService{
		register: func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
			t.Fatal("service must not be called for an invalid body")
			return nil, nil
		},
	}
	router := newAuthRouter(svc)

	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginInvalidCredentialsReturns401(t *testing.T) {
	svc := &stubAuthService{
		login: func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
			return nil, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
		},
	}
	router := newAuthRouter(svc)

	w := performRequest(router, http.MethodPost, "/api/v1/auth/login", `{"email":"ada@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	w := performRequest(router, http.MethodPost, "/api/v1/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")
}
