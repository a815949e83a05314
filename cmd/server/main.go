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

	"github.com/ErlanBelekov/rideboard/config"
	"github.com/ErlanBelekov/rideboard/internal/health"
	"github.com/ErlanBelekov/rideboard/internal/infrastructure/postgres"
	ctxlog "github.com/ErlanBelekov/rideboard/internal/log"
	"github.com/ErlanBelekov/rideboard/internal/metrics"
	"github.com/ErlanBelekov/rideboard/internal/session"
	httptransport "github.com/ErlanBelekov/rideboard/internal/transport/http"
	"github.com/ErlanBelekov/rideboard/internal/transport/http/handler"
	"github.com/ErlanBelekov/rideboard/internal/usecase"
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

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.DatabaseURL); err != nil {
			stop()
			log.Fatalf("migrate: %v", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	// Sessions live only in this process and start empty on every boot.
	sessions := session.NewTable(session.WithShards(cfg.SessionShards))

	userRepo := postgres.NewUserRepository(pool, cfg.DBQueryTimeout())
	entryRepo := postgres.NewEntryRepository(pool, cfg.DBQueryTimeout())

	authUsecase := usecase.NewAuthUsecase(userRepo, sessions, logger)
	entryUsecase := usecase.NewEntryUsecase(entryRepo, userRepo)
	userUsecase := usecase.NewUserUsecase(userRepo)

	authHandler := handler.NewAuthHandler(authUsecase, logger)
	entryHandler := handler.NewEntryHandler(entryUsecase, logger)
	userHandler := handler.NewUserHandler(userUsecase, logger)

	metrics.Register()
	metrics.RegisterSessionGauge(prometheus.DefaultRegisterer, sessions.Len)
	checker := health.NewChecker(map[string]health.Pinger{"postgres": pool}, logger, prometheus.DefaultRegisterer)

	if cfg.SessionSweepEnabled {
		sweeper, err := session.NewSweeper(sessions, cfg.SessionSweepSchedule, logger)
		if err != nil {
			stop()
			log.Fatalf("session sweeper: %v", err)
		}
		go sweeper.Start(ctx)
	}

	srv := http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httptransport.NewRouter(logger, authHandler, entryHandler, userHandler, authUsecase),
		ReadHeaderTimeout: 10 * time.Second,
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
