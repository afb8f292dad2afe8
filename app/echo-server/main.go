package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"applianceReco/app/echo-server/router"
	"applianceReco/business/taste"
	"applianceReco/internal/middleware"
	psqlRepo "applianceReco/internal/repository/postgres"
	redisRepo "applianceReco/internal/repository/redis"
	"applianceReco/internal/rest"
	"applianceReco/pkg/config"
	"applianceReco/pkg/database/postgres"
	"applianceReco/pkg/database/redis"
	"applianceReco/pkg/logger"
	"applianceReco/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting appliance taste API", "version", cfg.App.Version)

	metrics.Init()

	db, err := postgres.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected successfully")

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer func() {
		_ = redis.CloseRedisClient(redisClient)
	}()

	// Init repo
	tasteConfigRepo := psqlRepo.NewTasteConfigRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	configStore := redisRepo.NewTasteConfigCache(
		redisClient,
		tasteConfigRepo,
		time.Duration(cfg.Taste.CacheTTLSeconds)*time.Second,
	)

	// Init engine + service
	registry := taste.DefaultRegistry()
	selector := taste.Selector{
		DiffFactor:    cfg.Taste.SelectorDiffFactor,
		MaxShare:      cfg.Taste.SelectorMaxShare,
		FallbackShare: cfg.Taste.SelectorFallbackShare,
	}
	filter := taste.NewHardFilter(cfg.Taste.StudioMaxDepthMM, cfg.Taste.SingleMaxCapacityKG)
	tasteService := taste.NewTasteService(
		registry,
		selector,
		filter,
		configStore,
		productRepo,
		taste.Config{
			TopProducts: cfg.Taste.TopProductsPerCat,
			Revalidate:  cfg.Taste.Revalidate,
		},
	)

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(tasteService)
	tasteHandler := rest.NewTasteHandler(tasteService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recommendationHandler)
	router.SetTasteRoutes(api, tasteHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
