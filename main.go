package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/griffin1995/gift-sync/internal/cache"
	"github.com/griffin1995/gift-sync/internal/config"
	"github.com/griffin1995/gift-sync/internal/controllers"
	"github.com/griffin1995/gift-sync/internal/database"
	"github.com/griffin1995/gift-sync/internal/jwt"
	"github.com/griffin1995/gift-sync/internal/mailer"
	"github.com/griffin1995/gift-sync/internal/middleware"
	"github.com/griffin1995/gift-sync/internal/repository"
	"github.com/griffin1995/gift-sync/internal/service"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		logger.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
		cacheClient = nil
	} else {
		logger.Info("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	swipeRepo := repository.NewSwipeRepository(db)
	recRepo := repository.NewRecommendationRepository(db)
	linkRepo := repository.NewGiftLinkRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize mailer (no-op when the API key is absent)
	mailService := mailer.NewService(cfg.ResendAPIKey, cfg.ResendBaseURL, cfg.EmailFrom, cfg.AdminEmail, logger)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, logger)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, cacheClient)
	swipeService := service.NewSwipeService(swipeRepo, userRepo)
	recService := service.NewRecommendationService(recRepo)
	linkService := service.NewGiftLinkService(linkRepo, userRepo, cfg.FrontendURL, logger)
	analyticsService := service.NewAnalyticsService(categoryRepo, productRepo, swipeRepo, logger)
	newsletterService := service.NewNewsletterService(newsletterRepo, mailService)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	catalogController := controllers.NewCatalogController(catalogService)
	swipeController := controllers.NewSwipeController(swipeService)
	recController := controllers.NewRecommendationController(recService)
	linkController := controllers.NewGiftLinkController(linkService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)
	newsletterController := controllers.NewNewsletterController(newsletterService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	router := gin.Default()

	// Liveness endpoints (no rate limiting)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to GiftSync API",
			"version": version,
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"version":   version,
		})
	})

	// API v1 routes group with general rate limiting
	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authController.Logout)
			auth.POST("/refresh", authController.Refresh)
			auth.GET("/me", middleware.AuthMiddleware(jwtService), authController.Me)
		}

		api.GET("/categories", catalogController.ListCategories)
		api.GET("/categories/:id", catalogController.GetCategory)

		api.GET("/products", catalogController.ListProducts)
		api.GET("/products/:id", catalogController.GetProduct)
		api.POST("/products", catalogController.CreateProduct)

		api.POST("/users", userController.CreateUser)
		api.GET("/users/:id", userController.GetUser)
		api.GET("/users/:id/recommendations", recController.ListForUser)

		api.POST("/swipe-sessions", swipeController.CreateSession)
		api.GET("/swipe-sessions/:id", swipeController.GetSession)
		api.POST("/swipe-interactions", swipeController.CreateInteraction)
		api.GET("/sessions/:id/interactions", swipeController.ListSessionInteractions)

		api.POST("/recommendations", recController.Create)

		api.POST("/gift-links", linkController.Create)
		api.GET("/gift-links/:token", linkController.GetByToken)
		api.GET("/gift-links/:token/qrcode", linkController.QRCode)

		api.POST("/analytics/track", analyticsController.Track)
		api.GET("/analytics/dashboard", analyticsController.Dashboard)

		api.POST("/newsletter/signup", newsletterController.Signup)
	}

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
