package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/petlove/backend/internal/auth"
	"github.com/petlove/backend/internal/repositories"
	"github.com/petlove/backend/internal/router"
	"github.com/petlove/backend/pkg/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const devJWTSecret = "supersecretjwtkey"

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			logger.Fatal("JWT_SECRET must be set outside development")
		}
		logger.Warn("JWT_SECRET not set, using the development secret")
		cfg.JWTSecret = devJWTSecret
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connection
	db, err := config.InitDB(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.CloseDB()

	if err := repositories.EnsureIndexes(ctx, db.Database); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	e := router.New(router.Dependencies{
		Config:    cfg,
		Logger:    logger,
		Tokens:    auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Users:     repositories.NewMongoUserRepository(db.Database),
		Notices:   repositories.NewMongoNoticeRepository(db.Database),
		Pets:      repositories.NewMongoPetRepository(db.Database),
		Locations: repositories.NewMongoLocationRepository(db.Database),
		Friends:   repositories.NewMongoFriendRepository(db.Database),
		News:      repositories.NewMongoNewsRepository(db.Database),
	})

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
