package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/griffin1995/gift-sync/internal/entities"
)

// RecommendationRepository defines the interface for recommendation database
// operations
type RecommendationRepository interface {
	Create(ctx context.Context, rec *entities.Recommendation) (*entities.Recommendation, error)
	ListByUser(ctx context.Context, userID string, sessionID *string, limit int) ([]*entities.Recommendation, error)
}

type recommendationRepository struct {
	db *sql.DB
}

// NewRecommendationRepository creates a new recommendation repository
func NewRecommendationRepository(db *sql.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

const recommendationColumns = `id, user_id, session_id, payload, confidence, created_at`

// Create inserts a new recommendation record. The payload is stored verbatim.
func (r *recommendationRepository) Create(ctx context.Context, rec *entities.Recommendation) (*entities.Recommendation, error) {
	query := `
		INSERT INTO recommendations (id, user_id, session_id, payload, confidence)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + recommendationColumns

	var created entities.Recommendation
	var payload []byte
	err := r.db.QueryRowContext(ctx, query,
		rec.ID, rec.UserID, rec.SessionID, []byte(rec.Payload), rec.Confidence,
	).Scan(&created.ID, &created.UserID, &created.SessionID, &payload, &created.Confidence, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation: %w", err)
	}
	created.Payload = payload

	return &created, nil
}

// ListByUser returns recommendations for a user, optionally scoped to a session
func (r *recommendationRepository) ListByUser(ctx context.Context, userID string, sessionID *string, limit int) ([]*entities.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE user_id = $1`
	args := []interface{}{userID}

	if sessionID != nil {
		args = append(args, *sessionID)
		query += fmt.Sprintf(` AND session_id = $%d`, len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	defer rows.Close()

	var recs []*entities.Recommendation
	for rows.Next() {
		var rec entities.Recommendation
		var payload []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.SessionID, &payload, &rec.Confidence, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		rec.Payload = payload
		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recommendations: %w", err)
	}

	return recs, nil
}
