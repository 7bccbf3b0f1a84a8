package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-ledger/config"
	"marketplace-ledger/internal/adapter/cache"
	httpHandler "marketplace-ledger/internal/adapter/http/handler"
	"marketplace-ledger/internal/adapter/metrics"
	memStorage "marketplace-ledger/internal/adapter/storage/memory"
	pgStorage "marketplace-ledger/internal/adapter/storage/postgres"
	redisStorage "marketplace-ledger/internal/adapter/storage/redis"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/internal/service"
	"marketplace-ledger/pkg/logger"
)

func main() {
	configPath := os.Getenv("MPL_CONFIG")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("otp_store", cfg.OTP.Store).
		Msg("Starting Marketplace Ledger")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Initialize repositories
	saleRepo := pgStorage.NewSaleRepo(pool)
	withdrawalRepo := pgStorage.NewWithdrawalRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	vendorRepo := pgStorage.NewVendorRepo(pool)
	statsRepo := pgStorage.NewStatisticsRepo()
	adminBalanceRepo := pgStorage.NewAdminBalanceRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	if err := adminBalanceRepo.EnsureRow(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise admin balance")
	}

	// Initialize stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	withdrawalCodes := redisStorage.NewConfirmationCodeStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	var (
		approvalCodes ports.ApprovalCodeStore
		limiter       ports.AttemptLimiter
	)
	switch cfg.OTP.Store {
	case "redis":
		approvalCodes = redisStorage.NewApprovalStore(rdb)
		limiter = redisStorage.NewAttemptLimiter(rdb, cfg.OTP)
	default:
		approvalCodes = memStorage.NewApprovalStore(time.Now)
		limiter = memStorage.NewAttemptLimiter(cfg.OTP)
	}

	vendorCache := cache.NewVendorCache(cfg.Cache)
	ledgerMetrics := metrics.New()

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(auditRepo, log)
	notifier := service.NewHTTPNotifier(cfg.Notify, sigSvc, &http.Client{Timeout: cfg.Notify.Timeout}, log)

	txPolicy := service.TxPolicy{
		MaxAttempts: cfg.Ledger.MaxTxAttempts,
		Backoff:     cfg.Ledger.RetryBackoff,
	}

	// Initialize business services
	ledgerSvc := service.NewLedgerService(vendorRepo, statsRepo, vendorCache, transactor, txPolicy, ledgerMetrics, log)
	settlementSvc := service.NewSettlementService(
		saleRepo,
		adminBalanceRepo,
		statsRepo,
		vendorCache,
		notifier,
		auditSvc,
		transactor,
		txPolicy,
		ledgerMetrics,
		log,
	)
	adminBalanceSvc := service.NewAdminBalanceService(adminBalanceRepo, auditSvc, transactor, txPolicy, ledgerMetrics, log)
	withdrawalSvc := service.NewWithdrawalService(
		withdrawalRepo,
		walletRepo,
		vendorRepo,
		vendorCache,
		withdrawalCodes,
		ledgerSvc,
		settlementSvc,
		notifier,
		auditSvc,
		transactor,
		txPolicy,
		service.WithdrawalPolicy{
			MinAmount:    cfg.Ledger.MinWithdrawalAmount(),
			CodeTTL:      cfg.OTP.WithdrawalCodeTTL,
			AutoMarkPaid: cfg.Ledger.AutoMarkPaid,
		},
		ledgerMetrics,
		log,
	)
	approvalSvc := service.NewApprovalService(
		saleRepo,
		approvalCodes,
		limiter,
		settlementSvc,
		ledgerSvc,
		notifier,
		auditSvc,
		cfg.OTP.TTL,
		ledgerMetrics,
		log,
	)

	// Expired codes, lockouts and cache entries
	sweeper := service.NewSweeper(approvalCodes, limiter, vendorCache, ledgerMetrics, cfg.Sweep.Interval, log)
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		sweeper.Run(ctx)
	}()

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SettlementSvc:   settlementSvc,
		LedgerSvc:       ledgerSvc,
		WithdrawalSvc:   withdrawalSvc,
		AdminBalanceSvc: adminBalanceSvc,
		ApprovalSvc:     approvalSvc,
		SigSvc:          sigSvc,
		NonceStore:      nonceStore,
		TokenSvc:        tokenSvc,
		Checkout:        cfg.Checkout,
		RateLimitStore:  rateLimitStore,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		},
		Metrics: ledgerMetrics,
		Mode:    cfg.Server.Mode,
		Logger:  log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	<-sweepDone

	log.Info().Msg("Server exited")
}
