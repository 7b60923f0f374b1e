package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"lifenumber/reporthub/internal/config"
	"lifenumber/reporthub/internal/generation"
	"lifenumber/reporthub/internal/handler"
	"lifenumber/reporthub/internal/model"
	"lifenumber/reporthub/internal/repository"
	"lifenumber/reporthub/internal/service"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Initialize repositories (PostgreSQL or in-memory)
	var (
		reportRepo repository.ReportRepository
		codeRepo   repository.RedeemCodeRepository
	)
	switch cfg.Store.Backend {
	case "postgres":
		db, err := config.NewPostgresDB(cfg.Database.Postgres)
		if err != nil {
			logger.Fatal("failed to connect to postgres", zap.Error(err))
		}
		if cfg.Database.Postgres.AutoMigrate {
			if err := model.AutoMigrate(db); err != nil {
				logger.Fatal("failed to auto-migrate", zap.Error(err))
			}
			logger.Info("database migration completed")
		}
		reportRepo = repository.NewPGReportRepository(db)
		codeRepo = repository.NewPGRedeemCodeRepository(db)
		logger.Info("using PostgreSQL store")
	case "memory":
		reportRepo = repository.NewMemoryReportRepository()
		codeRepo = repository.NewMemoryRedeemCodeRepository()
		logger.Info("using in-memory store")
	default:
		logger.Fatal("unknown store backend", zap.String("backend", cfg.Store.Backend))
	}

	// 4. Initialize report cache (optional)
	var reportCache repository.ReportCache
	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		reportCache = repository.NewRedisReportCache(redisClient, cfg.Cache.TTL)
		logger.Info("using Redis report cache")
	case "memory":
		reportCache = repository.NewMemoryReportCache(cfg.Cache.TTL)
		logger.Info("using in-memory report cache")
	case "none", "":
		logger.Info("report cache disabled")
	default:
		logger.Fatal("unknown cache backend", zap.String("backend", cfg.Cache.Backend))
	}

	// 5. Initialize generation client
	generator := generation.NewClient(cfg.Generation, logger)

	// 6. Initialize services
	reportService := service.NewReportService(reportRepo, reportCache, generator, logger)
	redeemService := service.NewRedeemService(codeRepo, logger)

	// 7. Initialize handlers
	reportHandler := handler.NewReportHandler(reportService)
	redeemHandler := handler.NewRedeemHandler(redeemService)

	// 8. Setup router
	router := handler.SetupRouter(cfg, logger, reportHandler, redeemHandler)

	// 9. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 10. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
