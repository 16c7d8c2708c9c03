package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"tipjar/internal/config"
	"tipjar/internal/database"
	"tipjar/internal/handlers"
	"tipjar/internal/logger"
	"tipjar/internal/middleware"
	"tipjar/internal/services"
	"tipjar/internal/store"
	"tipjar/internal/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom validators
	validator.Register()

	// Initialize the authoritative tip page store
	tipStore, err := newStore(appConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	// Initialize services and handlers
	tipPageService := services.NewTipPageService(tipStore)
	tipPageHandler := handlers.NewTipPageHandler(tipPageService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestLogging())

	// API routes
	router.POST("/api/create-tip-page", tipPageHandler.Create)
	router.GET("/api/tip/*token", tipPageHandler.Get)

	// Tip display page: the token stays in the path, the page itself is
	// static and fetches the record through the API.
	router.GET("/tip/:token", func(c *gin.Context) {
		c.File(filepath.Join(appConfig.PublicDir, "tip.html"))
	})

	// Everything else is served from the public directory.
	router.NoRoute(servePublic(appConfig.PublicDir))

	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting tipjar backend server on port %s", appConfig.Port)
		log.Infof("Tip pages stored with driver %q", appConfig.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newStore picks the authoritative store backend from configuration: JSON
// files per token by default, or a gorm-managed database.
func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StorageDriver {
	case "file":
		return store.NewFileStore(cfg.DataDir)
	case "sqlite", "postgres":
		dbConfig, err := database.NewConfig()
		if err != nil {
			return nil, err
		}
		dbConfig.Driver = cfg.StorageDriver
		dbManager, err := database.NewManager(dbConfig)
		if err != nil {
			return nil, err
		}
		if err := dbManager.Migrate(); err != nil {
			return nil, err
		}
		return store.NewGormStore(dbManager.DB()), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// servePublic serves static assets from the public directory, with the setup
// form at the root. Paths are cleaned and anchored so a request cannot reach
// outside the directory.
func servePublic(publicDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}

		rel := filepath.Clean("/" + c.Request.URL.Path)
		if rel == "/" {
			rel = "/setup.html"
		}
		path := filepath.Join(publicDir, rel)
		if !strings.HasPrefix(path, filepath.Clean(publicDir)+string(os.PathSeparator)) {
			c.Status(http.StatusNotFound)
			return
		}

		if info, err := os.Stat(path); err != nil || info.IsDir() {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<h1>404 - Page Not Found</h1>"))
			return
		}
		c.File(path)
	}
}
