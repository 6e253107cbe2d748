package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qubic-pay/config"
	httpHandler "qubic-pay/internal/adapter/http/handler"
	"qubic-pay/internal/adapter/storage"
	fileStorage "qubic-pay/internal/adapter/storage/file"
	pgStorage "qubic-pay/internal/adapter/storage/postgres"
	redisStorage "qubic-pay/internal/adapter/storage/redis"
	"qubic-pay/internal/core/ports"
	"qubic-pay/internal/service"
	"qubic-pay/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("backend", cfg.Store.Backend).
		Int("port", cfg.Server.Port).
		Msg("Starting Qubic Pay ledger engine")

	ctx := context.Background()

	// Initialize the ledger store for the configured backend
	var (
		store   ports.LedgerStore
		health  ports.HealthChecker
		cleanup func()
	)
	switch cfg.Store.Backend {
	case config.StoreBackendFile:
		store = fileStorage.NewStore(cfg.Store.Path)
		health = fileStorage.NewHealthCheck(cfg.Store.Path)
		log.Info().Str("path", cfg.Store.Path).Msg("File store ready")

	case config.StoreBackendRedis:
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		cleanup = func() { _ = rdb.Close() }
		store = redisStorage.NewStore(rdb)
		health = redisStorage.NewHealthCheck(rdb)
		log.Info().Msg("Redis connected")

	case config.StoreBackendPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		cleanup = func() { pool.Close() }
		pgStore := pgStorage.NewStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure ledger schema")
		}
		store = pgStore
		health = pgStorage.NewHealthCheck(pool)
		log.Info().Msg("PostgreSQL connected")
	}
	if cleanup != nil {
		defer cleanup()
	}

	// Single-writer session over the document store
	session := storage.NewGuard(store)

	// Core infrastructure
	ids := service.NewRandIDSource()
	clock := service.NewSystemClock()

	// Business services
	accountSvc := service.NewAccountService(session, ids, clock, cfg.Ledger.SignupBonus, cfg.Ledger.CreditLimit, log)
	paymentSvc := service.NewPaymentService(session, ids, clock, cfg.Ledger.PaymentLinkBase, log)
	creditSvc := service.NewCreditService(session, ids, clock, cfg.Ledger.InterestRate, cfg.Ledger.ExchangeRate, log)
	historySvc := service.NewHistoryService(session, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AccountSvc:     accountSvc,
		PaymentSvc:     paymentSvc,
		CreditSvc:      creditSvc,
		HistorySvc:     historySvc,
		HealthCheckers: []ports.HealthChecker{health},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
