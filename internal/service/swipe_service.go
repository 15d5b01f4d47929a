package service

import (
	"context"
	"fmt"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/errs"
	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/repository"
)

// SwipeService defines the interface for swipe session and interaction logic
type SwipeService interface {
	CreateSession(ctx context.Context, req *models.CreateSwipeSessionRequest) (*entities.SwipeSession, error)
	GetSession(ctx context.Context, id string) (*entities.SwipeSession, error)
	CreateInteraction(ctx context.Context, req *models.CreateSwipeInteractionRequest) (*entities.SwipeInteraction, error)
	ListSessionInteractions(ctx context.Context, sessionID string, limit int) ([]*entities.SwipeInteraction, error)
}

type swipeService struct {
	swipeRepo repository.SwipeRepository
	userRepo  repository.UserRepository
}

// NewSwipeService creates a new swipe service
func NewSwipeService(swipeRepo repository.SwipeRepository, userRepo repository.UserRepository) SwipeService {
	return &swipeService{
		swipeRepo: swipeRepo,
		userRepo:  userRepo,
	}
}

// CreateSession starts a swipe session. A session for an unknown user first
// synthesizes a placeholder user row; if that repair fails the request is a
// client error and no session row is written.
func (s *swipeService) CreateSession(ctx context.Context, req *models.CreateSwipeSessionRequest) (*entities.SwipeSession, error) {
	if err := ensureUserExists(ctx, s.userRepo, req.UserID); err != nil {
		return nil, fmt.Errorf("user validation failed: %v: %w", err, errs.ErrBadRequest)
	}

	session := &entities.SwipeSession{
		ID:       newID(),
		UserID:   req.UserID,
		Platform: req.Platform,
	}

	return s.swipeRepo.CreateSession(ctx, session)
}

// GetSession returns a swipe session by id
func (s *swipeService) GetSession(ctx context.Context, id string) (*entities.SwipeSession, error) {
	return s.swipeRepo.FindSessionByID(ctx, id)
}

// CreateInteraction records a single swipe within a session
func (s *swipeService) CreateInteraction(ctx context.Context, req *models.CreateSwipeInteractionRequest) (*entities.SwipeInteraction, error) {
	interaction := &entities.SwipeInteraction{
		ID:        newID(),
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		Direction: req.Direction,
	}

	return s.swipeRepo.CreateInteraction(ctx, interaction)
}

// ListSessionInteractions returns the interactions recorded for a session
func (s *swipeService) ListSessionInteractions(ctx context.Context, sessionID string, limit int) ([]*entities.SwipeInteraction, error) {
	return s.swipeRepo.ListInteractionsBySession(ctx, sessionID, limit)
}
