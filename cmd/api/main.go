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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/click-ai/cal.com/internal/config"
	"github.com/click-ai/cal.com/internal/database"
	"github.com/click-ai/cal.com/internal/fixtures"
	"github.com/click-ai/cal.com/internal/handlers"
	"github.com/click-ai/cal.com/internal/middleware"
	"github.com/click-ai/cal.com/pkg/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The service seeds and mutates test data. Never run it against a
	// production database.
	if cfg.App.Env == "production" {
		log.Fatal("testdata-api refuses to start with APP_ENV=production")
	}

	if cfg.App.Env == "test" {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize logger
	err = utils.InitLogger(&utils.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting testdata API", utils.LogFields{
		"version":     "1.0.0",
		"environment": cfg.App.Env,
		"port":        cfg.App.Port,
		"worker_name": cfg.Seed.WorkerName,
	})

	// Initialize database
	dbConn, err := database.Initialize(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer dbConn.Close()

	db := dbConn.DB()

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}
	logger.Info("Database migrations completed successfully", nil)

	// Initialize the fixture factory and handlers
	factory := fixtures.NewFactory(db, cfg.Seed)

	handlerContainer := &HandlerContainer{
		TestDataHandler: handlers.NewTestDataHandler(factory),
		HealthHandler:   handlers.NewHealthHandler(db),
	}

	router := setupRouter(cfg, handlerContainer)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.App.Port),
		Handler:        router,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Setup graceful shutdown
	go func() {
		logger.Info("Server starting", utils.LogFields{
			"addr": srv.Addr,
		})

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", err)
	}

	logger.Info("Server stopped gracefully")
}

// HandlerContainer holds all initialized handlers
type HandlerContainer struct {
	TestDataHandler *handlers.TestDataHandler
	HealthHandler   *handlers.HealthHandler
}

func setupRouter(cfg *config.Config, handlers *HandlerContainer) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(utils.GetLogrusLogger()))

	// Security middleware
	router.Use(func(c *gin.Context) {
		utils.SetSecurityHeaders(c)
		c.Next()
	})

	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimitMiddleware(cfg))
	}

	// Health endpoints
	router.GET("/health", handlers.HealthHandler.Health)
	router.GET("/ready", handlers.HealthHandler.Readiness)
	router.GET("/live", handlers.HealthHandler.Liveness)

	router.GET("/", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{
			"name":        cfg.App.Name,
			"version":     "1.0.0",
			"environment": cfg.App.Env,
			"status":      "running",
			"timestamp":   time.Now(),
		})
	})

	// API routes
	api := router.Group("/api")
	{
		testdata := api.Group("/testdata")
		{
			testdata.POST("/users", handlers.TestDataHandler.CreateTestUser)
		}
	}

	return router
}
