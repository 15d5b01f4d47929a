package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/service"
)

const (
	maxCategoryLimit     = 100
	defaultCategoryLimit = 50
	maxProductLimit      = 100
	defaultProductLimit  = 20
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCategories handles GET /api/v1/categories
func (cc *CatalogController) ListCategories(c *gin.Context) {
	limit, ok := parseLimit(c, defaultCategoryLimit, maxCategoryLimit)
	if !ok {
		return
	}
	activeOnly, ok := parseBoolQuery(c, "active_only", true)
	if !ok {
		return
	}

	categories, err := cc.catalogService.ListCategories(c.Request.Context(), activeOnly, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if categories == nil {
		categories = []*entities.Category{}
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/v1/categories/:id
func (cc *CatalogController) GetCategory(c *gin.Context) {
	category, err := cc.catalogService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// ListProducts handles GET /api/v1/products. min_price, max_price and search
// are bound for contract compatibility but not applied (see
// models.ProductFilters).
func (cc *CatalogController) ListProducts(c *gin.Context) {
	limit, ok := parseLimit(c, defaultProductLimit, maxProductLimit)
	if !ok {
		return
	}
	activeOnly, ok := parseBoolQuery(c, "active_only", true)
	if !ok {
		return
	}

	filters := models.ProductFilters{
		ActiveOnly: activeOnly,
		Limit:      limit,
	}
	if v := c.Query("category_id"); v != "" {
		filters.CategoryID = &v
	}
	if v := c.Query("min_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_price must be a number"})
			return
		}
		filters.MinPrice = &price
	}
	if v := c.Query("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_price must be a number"})
			return
		}
		filters.MaxPrice = &price
	}
	if v := c.Query("search"); v != "" {
		filters.Search = &v
	}

	products, err := cc.catalogService.ListProducts(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	if products == nil {
		products = []*entities.Product{}
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id
func (cc *CatalogController) GetProduct(c *gin.Context) {
	product, err := cc.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/v1/products
func (cc *CatalogController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	product, err := cc.catalogService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
