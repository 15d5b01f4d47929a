package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/errs"
)

// SwipeRepository defines the interface for swipe session and interaction
// database operations
type SwipeRepository interface {
	CreateSession(ctx context.Context, session *entities.SwipeSession) (*entities.SwipeSession, error)
	FindSessionByID(ctx context.Context, id string) (*entities.SwipeSession, error)
	CreateInteraction(ctx context.Context, interaction *entities.SwipeInteraction) (*entities.SwipeInteraction, error)
	ListInteractionsBySession(ctx context.Context, sessionID string, limit int) ([]*entities.SwipeInteraction, error)
	ListSessionIDs(ctx context.Context, limit int) ([]string, error)
	ListInteractionIDs(ctx context.Context, limit int) ([]string, error)
}

type swipeRepository struct {
	db *sql.DB
}

// NewSwipeRepository creates a new swipe repository
func NewSwipeRepository(db *sql.DB) SwipeRepository {
	return &swipeRepository{db: db}
}

const sessionColumns = `id, user_id, platform, started_at, completed_at, created_at`
const interactionColumns = `id, session_id, product_id, direction, created_at`

// CreateSession inserts a new swipe session
func (r *swipeRepository) CreateSession(ctx context.Context, session *entities.SwipeSession) (*entities.SwipeSession, error) {
	query := `
		INSERT INTO swipe_sessions (id, user_id, platform)
		VALUES ($1, $2, $3)
		RETURNING ` + sessionColumns

	var s entities.SwipeSession
	err := r.db.QueryRowContext(ctx, query, session.ID, session.UserID, session.Platform).Scan(
		&s.ID, &s.UserID, &s.Platform, &s.StartedAt, &s.CompletedAt, &s.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create swipe session: %w", err)
	}

	return &s, nil
}

// FindSessionByID finds a swipe session by ID
func (r *swipeRepository) FindSessionByID(ctx context.Context, id string) (*entities.SwipeSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM swipe_sessions WHERE id = $1`

	var s entities.SwipeSession
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Platform, &s.StartedAt, &s.CompletedAt, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session not found: %w", errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return &s, nil
}

// CreateInteraction records a swipe within a session
func (r *swipeRepository) CreateInteraction(ctx context.Context, interaction *entities.SwipeInteraction) (*entities.SwipeInteraction, error) {
	query := `
		INSERT INTO swipe_interactions (id, session_id, product_id, direction)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + interactionColumns

	var i entities.SwipeInteraction
	err := r.db.QueryRowContext(ctx, query,
		interaction.ID, interaction.SessionID, interaction.ProductID, interaction.Direction,
	).Scan(&i.ID, &i.SessionID, &i.ProductID, &i.Direction, &i.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create swipe interaction: %w", err)
	}

	return &i, nil
}

// ListInteractionsBySession returns interactions for one session
func (r *swipeRepository) ListInteractionsBySession(ctx context.Context, sessionID string, limit int) ([]*entities.SwipeInteraction, error) {
	query := `SELECT ` + interactionColumns + `
		FROM swipe_interactions WHERE session_id = $1
		ORDER BY created_at LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	defer rows.Close()

	var interactions []*entities.SwipeInteraction
	for rows.Next() {
		var i entities.SwipeInteraction
		if err := rows.Scan(&i.ID, &i.SessionID, &i.ProductID, &i.Direction, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		interactions = append(interactions, &i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read interactions: %w", err)
	}

	return interactions, nil
}

// ListSessionIDs returns up to limit session ids, used for capped dashboard counts
func (r *swipeRepository) ListSessionIDs(ctx context.Context, limit int) ([]string, error) {
	return r.listIDs(ctx, `SELECT id FROM swipe_sessions LIMIT $1`, limit)
}

// ListInteractionIDs returns up to limit interaction ids, used for capped dashboard counts
func (r *swipeRepository) ListInteractionIDs(ctx context.Context, limit int) ([]string, error) {
	return r.listIDs(ctx, `SELECT id FROM swipe_interactions LIMIT $1`, limit)
}

func (r *swipeRepository) listIDs(ctx context.Context, query string, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ids: %w", err)
	}

	return ids, nil
}
