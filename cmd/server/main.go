package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/colejunck1/Task-Tracker/config"
	"github.com/colejunck1/Task-Tracker/internal/api/handler"
	"github.com/colejunck1/Task-Tracker/internal/api/router"
	"github.com/colejunck1/Task-Tracker/internal/repository"
	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/database"
	"github.com/colejunck1/Task-Tracker/pkg/jwt"
	"github.com/colejunck1/Task-Tracker/pkg/logger"
	"github.com/colejunck1/Task-Tracker/pkg/objectstore"
	"github.com/colejunck1/Task-Tracker/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// 1. Load configuration.
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. Initialize logger.
	zl, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	// 3. Connect to PostgreSQL and apply migrations.
	db, err := database.NewDB(&cfg.Database, zl)
	if err != nil {
		zl.Fatal("connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zl.Fatal("unwrap sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, zl); err != nil {
		zl.Fatal("run migrations", zap.Error(err))
	}

	// 4. Connect to Redis. Revocation checks and rate limiting degrade
	// open without it, so a failure here is not fatal.
	rdb, err := redis.NewClient(&cfg.Redis, zl)
	if err != nil {
		zl.Warn("redis unavailable, session revocation and rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	// 5. Connect to the object store holding order PDFs.
	store, err := objectstore.NewClient(&cfg.Storage, zl)
	if err != nil {
		zl.Fatal("connect to object store", zap.Error(err))
	}

	// 6. Wire the layers together.
	verifier := jwt.NewVerifier(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, store, zl)
	h := handler.NewHandler(svc)
	r := router.Setup(cfg, h, verifier, rdb, zl)

	// 7. Serve until interrupted.
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}

	if err := sqlDB.Close(); err != nil {
		zl.Error("close database", zap.Error(err))
	}

	zl.Info("server stopped")
}
