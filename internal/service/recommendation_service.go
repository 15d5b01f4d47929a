package service

import (
	"context"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/repository"
)

// RecommendationService defines the interface for recommendation storage.
// Records are opaque: this service stores and returns them verbatim.
type RecommendationService interface {
	Create(ctx context.Context, req *models.CreateRecommendationRequest) (*entities.Recommendation, error)
	ListForUser(ctx context.Context, userID string, sessionID *string, limit int) ([]*entities.Recommendation, error)
}

type recommendationService struct {
	recRepo repository.RecommendationRepository
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(recRepo repository.RecommendationRepository) RecommendationService {
	return &recommendationService{recRepo: recRepo}
}

// Create stores a recommendation record
func (s *recommendationService) Create(ctx context.Context, req *models.CreateRecommendationRequest) (*entities.Recommendation, error) {
	rec := &entities.Recommendation{
		ID:         newID(),
		UserID:     req.UserID,
		SessionID:  req.SessionID,
		Payload:    req.Payload,
		Confidence: req.Confidence,
	}

	return s.recRepo.Create(ctx, rec)
}

// ListForUser returns stored recommendations for a user
func (s *recommendationService) ListForUser(ctx context.Context, userID string, sessionID *string, limit int) ([]*entities.Recommendation, error) {
	return s.recRepo.ListByUser(ctx, userID, sessionID, limit)
}
