package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/errs"
	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/repository"
)

// GiftLinkService defines the interface for gift link business logic
type GiftLinkService interface {
	CreateLink(ctx context.Context, req *models.CreateGiftLinkRequest) (*entities.GiftLink, error)
	GetByToken(ctx context.Context, token string) (*entities.GiftLink, error)
	ShareURL(token string) string
}

type giftLinkService struct {
	linkRepo    repository.GiftLinkRepository
	userRepo    repository.UserRepository
	frontendURL string
	logger      *zap.Logger
}

// NewGiftLinkService creates a new gift link service
func NewGiftLinkService(linkRepo repository.GiftLinkRepository, userRepo repository.UserRepository, frontendURL string, logger *zap.Logger) GiftLinkService {
	return &giftLinkService{
		linkRepo:    linkRepo,
		userRepo:    userRepo,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// CreateLink creates a gift link with a server-generated token. The lazy
// user repair here is best-effort: a repair failure is logged and the insert
// proceeds anyway. This differs from swipe sessions on purpose; unifying the
// two needs product-owner sign-off because it changes observable errors.
func (s *giftLinkService) CreateLink(ctx context.Context, req *models.CreateGiftLinkRequest) (*entities.GiftLink, error) {
	if err := ensureUserExists(ctx, s.userRepo, req.UserID); err != nil {
		s.logger.Warn("gift link user repair failed, continuing",
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
	}

	link := &entities.GiftLink{
		ID:        newID(),
		UserID:    req.UserID,
		SessionID: req.SessionID,
		LinkToken: newID(),
		Title:     req.Title,
		Message:   req.Message,
		IsActive:  true,
	}

	return s.linkRepo.Create(ctx, link)
}

// GetByToken looks up a gift link. A token that exists but is inactive
// produces a not-found with a different message from an unknown token;
// clients key off the text.
func (s *giftLinkService) GetByToken(ctx context.Context, token string) (*entities.GiftLink, error) {
	link, err := s.linkRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if !link.IsActive {
		return nil, fmt.Errorf("gift link %s exists but is not active: %w", token, errs.ErrNotFound)
	}

	return link, nil
}

// ShareURL builds the public URL a gift link QR code points at
func (s *giftLinkService) ShareURL(token string) string {
	return s.frontendURL + "/gift/" + token
}
