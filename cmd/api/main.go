package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wexel-ledger/config"
	"wexel-ledger/internal/adapter/http/handler"
	"wexel-ledger/internal/adapter/http/middleware"
	"wexel-ledger/internal/adapter/messaging"
	"wexel-ledger/internal/adapter/pricing"
	pgStorage "wexel-ledger/internal/adapter/storage/postgres"
	redisStorage "wexel-ledger/internal/adapter/storage/redis"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/internal/service"
	"wexel-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var configPath = flag.String("config", "", "Path to configuration file")

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
		Service: "wexel-ledger",
	})
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Wexel Ledger")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}
	store := pgStorage.NewStore(pool, logger.Component(log, "store"))

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	processedCache := redisStorage.NewProcessedEventCache(rdb)
	priceCache := redisStorage.NewPriceCache(rdb)
	var limiter middleware.Limiter
	if cfg.RateLimit.Enabled {
		limiter = redisStorage.NewRateLimitStore(rdb)
	}

	// Initialize NATS
	nc, js, err := messaging.Connect(cfg.NATS, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to NATS")
	}
	defer nc.Close()
	notifier := messaging.NewNotifier(js, cfg.NATS.NotifySubject)

	// Initialize pricing
	registry, err := pricing.NewRegistry(cfg.Boost.Tokens)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid boost token configuration")
	}
	pricingLog := logger.Component(log, "pricing")
	feeds := []pricing.NamedSource{
		{Name: "coingecko", Source: pricing.NewCoinGeckoClient(cfg.Pricing, registry.CoinGeckoIDs(), pricingLog)},
	}
	if cfg.Pricing.JupiterURL != "" {
		feeds = append(feeds, pricing.NamedSource{Name: "jupiter", Source: pricing.NewJupiterClient(cfg.Pricing, pricingLog)})
	}
	prices := pricing.NewCachedSource(
		pricing.NewFallbackSource(pricingLog, feeds...),
		priceCache,
		cfg.Pricing.CacheTTL,
		pricingLog,
	)

	// Initialize business services
	serviceLog := logger.Component(log, "service")
	clock := service.NewMonotonicClock()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	depositSvc := service.NewDepositService(store, notifier, serviceLog)
	accrualSvc := service.NewAccrualService(store, notifier, serviceLog)
	boostSvc := service.NewBoostService(store, prices, registry, notifier, cfg.Pricing.MaxAge, serviceLog)
	collateralSvc := service.NewCollateralService(store, notifier, cfg.Ledger.LTVBP, serviceLog)
	marketplaceSvc := service.NewMarketplaceService(store, notifier, serviceLog)
	querySvc := service.NewQueryService(store, collateralSvc, serviceLog)
	// Overrides live as long as boosts would accept them as fresh.
	priceAdminSvc := service.NewPriceAdminService(registry, priceCache, cfg.Pricing.MaxAge, serviceLog)
	reconciler := service.NewReconcilerService(service.ReconcilerDeps{
		Deposits:    depositSvc,
		Accrual:     accrualSvc,
		Boosts:      boostSvc,
		Collateral:  collateralSvc,
		Marketplace: marketplaceSvc,
		Cache:       processedCache,
		CacheTTL:    cfg.Ledger.ProcessedCacheTTL,
	}, logger.Component(log, "reconciler"))

	errCh := make(chan error, 2)

	// Start the chain event consumer
	consumer := messaging.NewEventConsumer(js, reconciler, cfg.NATS, logger.Component(log, "consumer"))
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("event consumer: %w", err)
		}
	}()

	// Start the listing expiry sweeper
	go sweepExpiredListings(ctx, marketplaceSvc, clock, cfg.Marketplace.SweepInterval, logger.Component(log, "sweeper"))

	// Setup Gin router with all routes
	auditLog := logger.Component(log, "audit")
	router := handler.SetupRouter(handler.RouterDeps{
		Deposits:       depositSvc,
		Accrual:        accrualSvc,
		Boosts:         boostSvc,
		Collateral:     collateralSvc,
		Marketplace:    marketplaceSvc,
		Query:          querySvc,
		Reconciler:     reconciler,
		Prices:         priceAdminSvc,
		TokenSvc:       tokenSvc,
		Clock:          clock,
		Admins:         cfg.JWT.Admins,
		RateLimiter:    limiter,
		RateLimits:     middleware.RateLimitRules(cfg.RateLimit.Window, cfg.RateLimit.Limits),
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
			messaging.NewHealthCheck(nc),
		},
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Logger:       log,
		AuditLogger:  &auditLog,
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
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server...")
	case err := <-errCh:
		log.Error().Err(err).Msg("Component failed, shutting down")
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// sweepExpiredListings runs ExpireListings every interval until ctx is done.
func sweepExpiredListings(ctx context.Context, svc ports.MarketplaceService, clock ports.Clock, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		log.Warn().Msg("listing expiry sweeper disabled")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.ExpireListings(ctx, clock.Now())
			if err != nil {
				log.Error().Err(err).Int("expired", n).Msg("listing sweep failed")
				continue
			}
			if n > 0 {
				log.Debug().Int("expired", n).Msg("listing sweep complete")
			}
		}
	}
}
