package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exchange-ledger/config"
	httpHandler "exchange-ledger/internal/adapter/http/handler"
	pgStorage "exchange-ledger/internal/adapter/storage/postgres"
	redisStorage "exchange-ledger/internal/adapter/storage/redis"
	"exchange-ledger/internal/core/ports"
	"exchange-ledger/internal/service"
	"exchange-ledger/pkg/logger"
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
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Exchange Ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	holdingRepo := pgStorage.NewHoldingRepo(pool)
	spotTxRepo := pgStorage.NewSpotTransactionRepo(pool)
	futureOrderRepo := pgStorage.NewFutureOrderRepo(pool)
	bankRepo := pgStorage.NewBankAccountRepo(pool)
	accountTxRepo := pgStorage.NewAccountTransactionRepo(pool)
	p2pOrderRepo := pgStorage.NewP2POrderRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(userRepo, walletRepo, hashSvc, tokenSvc, log)
	walletSvc := service.NewWalletService(walletRepo, holdingRepo, log)
	spotSvc := service.NewSpotService(walletRepo, holdingRepo, spotTxRepo, transactor, log)
	futuresSvc := service.NewFuturesService(walletRepo, holdingRepo, futureOrderRepo, transactor, cfg.Ledger.MaxLeverage, log)
	p2pSvc := service.NewP2PService(p2pOrderRepo, userRepo, walletRepo, bankRepo, accountTxRepo, transactor, cfg.Ledger.QuoteCurrency, log)
	bankSvc := service.NewBankService(bankRepo, log)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		WalletSvc:      walletSvc,
		SpotSvc:        spotSvc,
		FuturesSvc:     futuresSvc,
		P2PSvc:         p2pSvc,
		BankSvc:        bankSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
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
