package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/errs"
)

// GiftLinkRepository defines the interface for gift link database operations
type GiftLinkRepository interface {
	Create(ctx context.Context, link *entities.GiftLink) (*entities.GiftLink, error)
	FindByToken(ctx context.Context, token string) (*entities.GiftLink, error)
}

type giftLinkRepository struct {
	db *sql.DB
}

// NewGiftLinkRepository creates a new gift link repository
func NewGiftLinkRepository(db *sql.DB) GiftLinkRepository {
	return &giftLinkRepository{db: db}
}

const giftLinkColumns = `id, user_id, session_id, link_token, title, message, is_active, created_at`

func scanGiftLink(scan func(dest ...any) error) (*entities.GiftLink, error) {
	var g entities.GiftLink
	err := scan(
		&g.ID, &g.UserID, &g.SessionID, &g.LinkToken, &g.Title, &g.Message, &g.IsActive, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts a new gift link
func (r *giftLinkRepository) Create(ctx context.Context, link *entities.GiftLink) (*entities.GiftLink, error) {
	query := `
		INSERT INTO gift_links (id, user_id, session_id, link_token, title, message, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + giftLinkColumns

	created, err := scanGiftLink(r.db.QueryRowContext(ctx, query,
		link.ID, link.UserID, link.SessionID, link.LinkToken, link.Title, link.Message, link.IsActive,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to create gift link: %w", err)
	}

	return created, nil
}

// FindByToken finds a gift link by its token regardless of active state.
// The caller is responsible for distinguishing inactive links.
func (r *giftLinkRepository) FindByToken(ctx context.Context, token string) (*entities.GiftLink, error) {
	query := `SELECT ` + giftLinkColumns + ` FROM gift_links WHERE link_token = $1`

	link, err := scanGiftLink(r.db.QueryRowContext(ctx, query, token).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("gift link %s not found in database: %w", token, errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find gift link: %w", err)
	}

	return link, nil
}
