package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/errs"
)

// CategoryRepository defines the interface for category database operations
type CategoryRepository interface {
	List(ctx context.Context, activeOnly bool, limit int) ([]*entities.Category, error)
	FindByID(ctx context.Context, id string) (*entities.Category, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

const categoryColumns = `id, name, slug, description, sort_order, is_active, created_at`

// List returns categories ordered by sort order, optionally active-only
func (r *categoryRepository) List(ctx context.Context, activeOnly bool, limit int) ([]*entities.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order, name LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*entities.Category
	for rows.Next() {
		var c entities.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.SortOrder, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return categories, nil
}

// FindByID finds a category by ID
func (r *categoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	var c entities.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.SortOrder, &c.IsActive, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category not found: %w", errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &c, nil
}
