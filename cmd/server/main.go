package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/roastery/storefront/internal/application/catalog"
	contactapp "github.com/roastery/storefront/internal/application/contact"
	tradeapp "github.com/roastery/storefront/internal/application/trade"
	catalogdomain "github.com/roastery/storefront/internal/domain/catalog"
	contactdomain "github.com/roastery/storefront/internal/domain/contact"
	tradedomain "github.com/roastery/storefront/internal/domain/trade"
	"github.com/roastery/storefront/internal/infrastructure/config"
	"github.com/roastery/storefront/internal/infrastructure/logger"
	"github.com/roastery/storefront/internal/infrastructure/persistence"
	"github.com/roastery/storefront/internal/infrastructure/persistence/gormstore"
	"github.com/roastery/storefront/internal/infrastructure/persistence/memory"
	"github.com/roastery/storefront/internal/interfaces/http/handler"
	"github.com/roastery/storefront/internal/interfaces/http/middleware"
	"github.com/roastery/storefront/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting coffee storefront API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("store", cfg.Store.Driver),
	)

	// Wire the backing store
	productRepo, orderRepo, messageRepo, subscriptionRepo, closeStore, err := buildStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer closeStore()

	// Seed the catalog on an empty store
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := persistence.SeedCatalog(seedCtx, productRepo); err != nil {
		cancelSeed()
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}
	cancelSeed()

	// Application services
	catalogService := catalogapp.NewService(productRepo)
	orderService := tradeapp.NewService(orderRepo, productRepo, cfg.Orders.VerifyTotals, log)
	contactService := contactapp.NewService(messageRepo, subscriptionRepo, log)

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig(cfg)),
	)
	middleware.SetupValidator()

	// Routes
	handler.NewHealthHandler(cfg.App.Name, cfg.App.Env).Register(engine)
	router.NewRouter(engine).
		Register(handler.NewCatalogHandler(catalogService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewContactHandler(contactService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// buildStore constructs the repository set for the configured driver.
// The returned closer is a no-op for the in-memory store.
func buildStore(cfg *config.Config, log *zap.Logger) (
	catalogdomain.ProductRepository,
	tradedomain.OrderRepository,
	contactdomain.MessageRepository,
	contactdomain.SubscriptionRepository,
	func(),
	error,
) {
	switch cfg.Store.Driver {
	case "sqlite":
		gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
		db, err := gormstore.Open(cfg.Store.DSN, gormLog)
		if err != nil {
			return nil, nil, nil, nil, nil, err
		}
		closer := func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
		}
		return gormstore.NewProductRepository(db.DB),
			gormstore.NewOrderRepository(db.DB),
			gormstore.NewMessageRepository(db.DB),
			gormstore.NewSubscriptionRepository(db.DB),
			closer,
			nil
	default:
		return memory.NewProductRepository(),
			memory.NewOrderRepository(),
			memory.NewMessageRepository(),
			memory.NewSubscriptionRepository(),
			func() {},
			nil
	}
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	return corsCfg
}
