// File: cmd/service/service.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ride-auth/internal/cache"
	"ride-auth/internal/config"
	"ride-auth/internal/database"
	"ride-auth/internal/handler/auth"
	"ride-auth/internal/logging"
	"ride-auth/internal/middleware"
	"ride-auth/internal/router"
	"ride-auth/internal/service"
	"ride-auth/internal/store"
	"ride-auth/internal/validation"
	"ride-auth/internal/worker"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "ride-auth/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.FromEnv
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	setupLogger     = func(format string) *slog.Logger { return logging.Setup(format, nil) }
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.LogFormat)
	ctx := context.Background()

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	var rdb cache.Cache
	if cfg.RedisEnabled() {
		rdb, err = newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer rdb.Close()
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	creds := service.NewCredentialService(
		store.NewUserStore(db),
		service.NewBcryptHasher(cfg.BcryptCost, wp),
		service.JWTIssuer{},
		config.EnvSecrets{},
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())

	router.Setup(e, db, rdb, auth.NewHandler(creds, validation.New(), logger), logger)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return serve(e, cfg.Addr(), logger)
}

// serve 啟動 echo，收到中斷訊號時優雅關閉
func serve(e *echo.Echo, addr string, logger *slog.Logger) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", addr)
		errCh <- startServer(e, addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-sigCtx.Done():
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(ctx)
	}
}
