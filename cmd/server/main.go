package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	benefitsapp "github.com/awerp/backend/internal/application/benefits"
	catalogapp "github.com/awerp/backend/internal/application/catalog"
	inventoryapp "github.com/awerp/backend/internal/application/inventory"
	salesapp "github.com/awerp/backend/internal/application/sales"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/awerp/backend/internal/infrastructure/cache"
	"github.com/awerp/backend/internal/infrastructure/config"
	"github.com/awerp/backend/internal/infrastructure/logger"
	"github.com/awerp/backend/internal/infrastructure/persistence"
	"github.com/awerp/backend/internal/interfaces/http/handler"
	"github.com/awerp/backend/internal/interfaces/http/middleware"
	"github.com/awerp/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting AdventureWorks Commons",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Invoice generation guard: Redis across instances, in-memory otherwise
	var guard shared.GenerationGuard
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		guard = cache.NewRedisGenerationGuard(redisClient)
		log.Info("Using Redis generation guard",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		guard = cache.NewInMemoryGenerationGuard()
	}

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	stagingRepo := persistence.NewGormStagingRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)
	changeLogRepo := persistence.NewGormStockChangeLogRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	benefitRepo := persistence.NewGormBenefitRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	referenceRepo := persistence.NewGormReferenceRepository(db.DB)

	// Stored-operation gateway
	gateway := persistence.NewGormProcedureGateway(db.DB, log)

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo, stagingRepo, referenceRepo)
	inventoryService := inventoryapp.NewInventoryService(inventoryRepo, changeLogRepo, referenceRepo, gateway, log)
	salesOrderService := salesapp.NewSalesOrderService(salesOrderRepo, invoiceRepo, referenceRepo, gateway, guard, log)
	benefitService := benefitsapp.NewBenefitService(benefitRepo, referenceRepo, gateway, log)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	salesOrderHandler := handler.NewSalesOrderHandler(salesOrderService)
	benefitHandler := handler.NewBenefitHandler(benefitService)
	systemHandler := handler.NewSystemHandler(db, cfg.App.Env == "production")

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so every later stage can tag logs
	// and error payloads with it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Every mutating request must carry the anti-forgery token issued by
	// GET /api/v1/antiforgery/token
	engine.Use(middleware.Antiforgery(middleware.AntiforgeryConfig{
		Secure: cfg.App.Env == "production",
	}))

	// Register routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(productHandler).
		Register(inventoryHandler).
		Register(salesOrderHandler).
		Register(benefitHandler).
		Register(systemHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
