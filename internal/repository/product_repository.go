package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/errs"
	"github.com/griffin1995/gift-sync/internal/models"
)

// ProductRepository defines the interface for product database operations
type ProductRepository interface {
	List(ctx context.Context, filters models.ProductFilters) ([]*entities.Product, error)
	FindActiveByID(ctx context.Context, id string) (*entities.Product, error)
	Create(ctx context.Context, product *entities.Product) (*entities.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, category_id, name, description, price, currency,
	image_url, affiliate_url, is_active, created_at`

func scanProduct(scan func(dest ...any) error) (*entities.Product, error) {
	var p entities.Product
	err := scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.Currency,
		&p.ImageURL, &p.AffiliateURL, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns products matching the supported filter predicates. The price
// bounds and search term in the filter set are accepted upstream but not
// applied here; see models.ProductFilters.
func (r *productRepository) List(ctx context.Context, filters models.ProductFilters) ([]*entities.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}

	if filters.ActiveOnly {
		query += ` AND is_active = TRUE`
	}
	if filters.CategoryID != nil {
		args = append(args, *filters.CategoryID)
		query += fmt.Sprintf(` AND category_id = $%d`, len(args))
	}

	args = append(args, filters.Limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*entities.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}

// FindActiveByID finds a product by ID. Inactive products are treated the
// same as missing ones.
func (r *productRepository) FindActiveByID(ctx context.Context, id string) (*entities.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND is_active = TRUE`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found: %w", errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return p, nil
}

// Create inserts a new product into the database
func (r *productRepository) Create(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	query := `
		INSERT INTO products (id, category_id, name, description, price, currency,
			image_url, affiliate_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + productColumns

	created, err := scanProduct(r.db.QueryRowContext(ctx, query,
		product.ID,
		product.CategoryID,
		product.Name,
		product.Description,
		product.Price,
		product.Currency,
		product.ImageURL,
		product.AffiliateURL,
		product.IsActive,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return created, nil
}
