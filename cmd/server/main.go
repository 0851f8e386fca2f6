package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StudenikinNikolay/filecloud/config"
	"github.com/StudenikinNikolay/filecloud/internal/auth"
	"github.com/StudenikinNikolay/filecloud/internal/health"
	"github.com/StudenikinNikolay/filecloud/internal/infrastructure/postgres"
	ctxlog "github.com/StudenikinNikolay/filecloud/internal/log"
	"github.com/StudenikinNikolay/filecloud/internal/metrics"
	"github.com/StudenikinNikolay/filecloud/internal/sweeper"
	httptransport "github.com/StudenikinNikolay/filecloud/internal/transport/http"
	"github.com/StudenikinNikolay/filecloud/internal/transport/http/handler"
	"github.com/StudenikinNikolay/filecloud/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := postgres.Migrate(ctx, cfg.DatabaseURL); err != nil {
		stop()
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	// Auth
	userRepo := postgres.NewUserRepository(pool)
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL())
	authUsecase := usecase.NewAuthUsecase(userRepo, tokens, logger)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Files
	fileRepo := postgres.NewFileRepository(pool)
	fileUsecase := usecase.NewFileUsecase(fileRepo)
	fileHandler := handler.NewFileHandler(fileUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	// Background token sweep
	sw := sweeper.New(userRepo, tokens, logger, cfg.TokenSweepSpec)
	if err := sw.Start(); err != nil {
		stop()
		log.Fatalf("sweeper: %v", err)
	}

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, authHandler, fileHandler, tokens),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
	<-sw.Stop().Done()
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
