package service

import (
	"context"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/repository"
)

// Mailer is the outbound email capability the newsletter flow depends on.
// Implementations report delivery as a boolean and never return errors.
type Mailer interface {
	SendWelcomeEmail(ctx context.Context, email, source string) bool
	SendAdminNotification(ctx context.Context, subscriberEmail, source, signupID string) bool
}

// NewsletterService defines the interface for newsletter signups
type NewsletterService interface {
	Signup(ctx context.Context, req *models.NewsletterSignupRequest) (*models.NewsletterSignupResponse, error)
}

type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	mailer         Mailer
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(newsletterRepo repository.NewsletterRepository, mailer Mailer) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		mailer:         mailer,
	}
}

// Signup stores the subscription and best-effort sends the welcome and admin
// emails. Delivery failure never fails the signup.
func (s *newsletterService) Signup(ctx context.Context, req *models.NewsletterSignupRequest) (*models.NewsletterSignupResponse, error) {
	source := "landing_page"
	if req.Source != nil && *req.Source != "" {
		source = *req.Source
	}

	signup := &entities.NewsletterSignup{
		ID:     newID(),
		Email:  req.Email,
		Source: source,
	}

	created, err := s.newsletterRepo.Create(ctx, signup)
	if err != nil {
		return nil, err
	}

	sent := s.mailer.SendWelcomeEmail(ctx, created.Email, created.Source)
	s.mailer.SendAdminNotification(ctx, created.Email, created.Source, created.ID)

	return &models.NewsletterSignupResponse{
		ID:        created.ID,
		Email:     created.Email,
		Source:    created.Source,
		EmailSent: sent,
	}, nil
}
