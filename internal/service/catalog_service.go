package service

import (
	"context"
	"time"

	"github.com/griffin1995/gift-sync/internal/cache"
	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/repository"
)

const detailCacheTTL = 5 * time.Minute

// CatalogService defines the interface for category and product reads/writes
type CatalogService interface {
	ListCategories(ctx context.Context, activeOnly bool, limit int) ([]*entities.Category, error)
	GetCategory(ctx context.Context, id string) (*entities.Category, error)
	ListProducts(ctx context.Context, filters models.ProductFilters) ([]*entities.Product, error)
	GetProduct(ctx context.Context, id string) (*entities.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*entities.Product, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	cache        cache.Cache
}

// NewCatalogService creates a new catalog service. A nil cache disables
// read-through caching without changing behavior.
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, cacheClient cache.Cache) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cache:        cacheClient,
	}
}

// ListCategories returns categories, filtering inactive ones by default
func (s *catalogService) ListCategories(ctx context.Context, activeOnly bool, limit int) ([]*entities.Category, error) {
	return s.categoryRepo.List(ctx, activeOnly, limit)
}

// GetCategory returns a single category by id
func (s *catalogService) GetCategory(ctx context.Context, id string) (*entities.Category, error) {
	if s.cache != nil {
		var cached entities.Category
		if err := s.cache.GetJSON(ctx, "category:"+id, &cached); err == nil {
			return &cached, nil
		}
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, "category:"+id, category, detailCacheTTL)
	}
	return category, nil
}

// ListProducts returns products for the supported filter predicates
func (s *catalogService) ListProducts(ctx context.Context, filters models.ProductFilters) ([]*entities.Product, error) {
	return s.productRepo.List(ctx, filters)
}

// GetProduct returns an active product by id. Inactive products are not found.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	if s.cache != nil {
		var cached entities.Product
		if err := s.cache.GetJSON(ctx, "product:"+id, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, "product:"+id, product, detailCacheTTL)
	}
	return product, nil
}

// CreateProduct inserts a new product row
func (s *catalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*entities.Product, error) {
	currency := "GBP"
	if req.Currency != nil {
		currency = *req.Currency
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	product := &entities.Product{
		ID:           newID(),
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Currency:     currency,
		ImageURL:     req.ImageURL,
		AffiliateURL: req.AffiliateURL,
		IsActive:     active,
	}

	return s.productRepo.Create(ctx, product)
}
