package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/griffin1995/gift-sync/internal/entities"
)

// NewsletterRepository defines the interface for newsletter signup storage
type NewsletterRepository interface {
	Create(ctx context.Context, signup *entities.NewsletterSignup) (*entities.NewsletterSignup, error)
}

type newsletterRepository struct {
	db *sql.DB
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(db *sql.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

// Create inserts a newsletter signup row
func (r *newsletterRepository) Create(ctx context.Context, signup *entities.NewsletterSignup) (*entities.NewsletterSignup, error) {
	query := `
		INSERT INTO newsletter_signups (id, email, source)
		VALUES ($1, $2, $3)
		RETURNING id, email, source, created_at`

	var s entities.NewsletterSignup
	err := r.db.QueryRowContext(ctx, query, signup.ID, signup.Email, signup.Source).Scan(
		&s.ID, &s.Email, &s.Source, &s.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create newsletter signup: %w", err)
	}

	return &s, nil
}
