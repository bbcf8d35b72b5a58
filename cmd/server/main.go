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

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/router"
	"finance-tracker/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	userRepo := repositories.NewUserRepository(db.DB)
	accountRepo := repositories.NewAccountRepository(db.DB)
	installmentRepo := repositories.NewInstallmentRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	summaryRepo := repositories.NewMonthlySummaryRepository(db.DB)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	scheduler := services.NewInstallmentScheduler(installmentRepo, logger)
	accountService := services.NewAccountService(accountRepo, installmentRepo, userRepo, scheduler, logger)
	ledger := services.NewPaymentLedger(accountRepo, installmentRepo, metrics, logger)
	transactionService := services.NewTransactionService(transactionRepo, accountRepo, logger)
	aggregator := services.NewMonthlyAggregator(transactionRepo, installmentRepo)
	summaryService := services.NewSummaryService(summaryRepo, aggregator, metrics, logger)
	userService := services.NewUserService(userRepo, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	go rateLimiter.RunCleanup(ctx, cfg.RateLimit.CleanupInterval)

	e := router.New(cfg, router.Dependencies{
		Accounts:     handlers.NewAccountHandler(accountService, scheduler, ledger),
		Installments: handlers.NewInstallmentHandler(ledger, accountService),
		Transactions: handlers.NewTransactionHandler(transactionService),
		Summaries:    handlers.NewSummaryHandler(summaryService),
		Users:        handlers.NewUserHandler(userService),
		Health:       handlers.NewHealthCheckHandler(db.DB),
		Verifier:     middleware.NewTokenVerifier(cfg.Auth),
		RateLimiter:  rateLimiter,
		Metrics:      metrics,
		Gatherer:     prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:        e,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 16,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}

	format := cfg.Log.Format
	if format == "" {
		format = "text"
		if cfg.IsProduction() {
			format = "json"
		}
	}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
