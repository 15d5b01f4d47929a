package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/errs"
	"github.com/griffin1995/gift-sync/internal/jwt"
	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context, userID string) (*models.UserView, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService, logger *zap.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// userView strips a user row down to the client-facing shape. The password
// hash never leaves this layer.
func userView(user *entities.User) models.UserView {
	return models.UserView{
		ID:               user.ID,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		SubscriptionTier: user.SubscriptionTier,
		CreatedAt:        user.CreatedAt,
		LastLogin:        user.LastLoginAt,
	}
}

// Register creates a new user account and returns a token pair.
// The FindByEmail pre-check is a fast path only; the unique index on
// users.email is the authoritative conflict signal.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("user with this email already exists: %w", errs.ErrAlreadyExists)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashStr := string(hashed)
	fullName := req.FirstName + " " + req.LastName
	now := time.Now().UTC()
	user := &entities.User{
		ID:               newID(),
		Email:            req.Email,
		PasswordHash:     &hashStr,
		FirstName:        &req.FirstName,
		LastName:         &req.LastName,
		FullName:         &fullName,
		SubscriptionTier: "free",
		DateOfBirth:      req.DateOfBirth,
		GDPRConsent:      true,
		EmailVerified:    false,
		LastLoginAt:      &now,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.tokenResponse(created)
}

// Login authenticates a user and returns a token pair. All credential
// failures map to the same unauthorized error; detail goes to logs only.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Info("login failed: unknown email", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
	}

	if user.PasswordHash == nil || *user.PasswordHash == "" {
		s.logger.Info("login failed: no password hash stored", zap.String("user_id", user.ID))
		return nil, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login failed: password mismatch", zap.String("user_id", user.ID))
		return nil, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLoginAt = &now

	return s.tokenResponse(user)
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", errs.ErrUnauthorized)
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("user no longer exists: %w", errs.ErrUnauthorized)
		}
		return nil, err
	}

	return s.tokenResponse(user)
}

// CurrentUser resolves the authenticated identity to its sanitized view
func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.UserView, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := userView(user)
	return &view, nil
}

func (s *authService) tokenResponse(user *entities.User) (*models.AuthResponse, error) {
	access, refresh, err := s.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userView(user),
	}, nil
}
