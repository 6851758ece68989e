package handler

import (
	"wexel-ledger/internal/adapter/http/middleware"
	"wexel-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultMaxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Deposits       ports.DepositService
	Accrual        ports.AccrualService
	Boosts         ports.BoostService
	Collateral     ports.CollateralService
	Marketplace    ports.MarketplaceService
	Query          ports.QueryService
	Reconciler     ports.Reconciler
	Prices         ports.PriceAdminService
	TokenSvc       ports.TokenService
	Clock          ports.Clock
	Admins         []string
	RateLimiter    middleware.Limiter // nil = rate limiting disabled
	RateLimits     map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	MaxBodyBytes   int64
	Logger         zerolog.Logger
	AuditLogger    *zerolog.Logger // nil = audit logging disabled
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))
	if deps.AuditLogger != nil {
		r.Use(middleware.AuditLog(*deps.AuditLogger))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := deps.RateLimits
	if rules == nil {
		rules = middleware.RateLimitRules(0, nil)
	}
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc)
	poolHandler := NewPoolHandler(deps.Deposits, deps.Clock)
	wexelHandler := NewWexelHandler(WexelServices{
		Query:      deps.Query,
		Accrual:    deps.Accrual,
		Boosts:     deps.Boosts,
		Collateral: deps.Collateral,
		Deposits:   deps.Deposits,
	}, deps.Clock)
	listingHandler := NewListingHandler(deps.Marketplace, deps.Query, deps.Clock)
	eventHandler := NewEventHandler(deps.Reconciler, deps.Marketplace, deps.Clock)
	priceHandler := NewPriceHandler(deps.Prices, deps.Clock)

	v1 := r.Group("/api/v1")

	// --- Public reads ---
	pools := v1.Group("/pools", rl("reads"))
	{
		pools.GET("", poolHandler.List)
		pools.GET("/:id", poolHandler.Get)
	}

	wexels := v1.Group("/wexels/:id")
	{
		wexels.GET("", rl("reads"), wexelHandler.Get)
		wexels.GET("/rewards", rl("reads"), wexelHandler.Rewards)
		wexels.GET("/loan-quote", rl("reads"), wexelHandler.LoanQuote)
		wexels.GET("/claims", rl("reads"), wexelHandler.ListClaims)
		wexels.GET("/boosts", rl("reads"), wexelHandler.ListBoosts)
		wexels.GET("/boosts/stats", rl("reads"), wexelHandler.BoostStats)
		wexels.GET("/boosts/quote", rl("reads"), wexelHandler.BoostQuote)

		// --- Owner actions (JWT) ---
		wexels.POST("/claims", jwtAuth, rl("claims"), wexelHandler.Claim)
		wexels.POST("/boosts", jwtAuth, rl("boosts"), wexelHandler.ApplyBoost)
		wexels.POST("/collateral", jwtAuth, rl("collateral"), wexelHandler.OpenCollateral)
		wexels.POST("/collateral/repay", jwtAuth, rl("collateral"), wexelHandler.Repay)
		wexels.POST("/redeem", jwtAuth, rl("redeem"), wexelHandler.Redeem)
		wexels.POST("/listings", jwtAuth, rl("marketplace"), listingHandler.Create)
	}

	listings := v1.Group("/listings")
	{
		listings.GET("", rl("reads"), listingHandler.List)
		listings.POST("/:listing_id/buy", jwtAuth, rl("marketplace"), listingHandler.Buy)
		listings.DELETE("/:listing_id", jwtAuth, rl("marketplace"), listingHandler.Cancel)
	}

	v1.GET("/owners/:address/portfolio", rl("reads"), wexelHandler.Portfolio)
	v1.GET("/me/portfolio", jwtAuth, rl("reads"), wexelHandler.Portfolio)

	// --- Operator routes (JWT + admin wallet) ---
	admin := v1.Group("/admin", jwtAuth, middleware.RequireAdmin(deps.Admins, deps.Logger), rl("admin"))
	{
		admin.POST("/pools", poolHandler.Create)
		admin.PATCH("/pools/:id", poolHandler.SetActive)
		admin.POST("/events", eventHandler.Ingest)
		admin.POST("/listings/expire", eventHandler.SweepExpired)
		admin.POST("/prices", priceHandler.SetManual)
	}

	return r
}
