package handler

import (
	"net/http"

	"marketplace-ledger/config"
	"marketplace-ledger/internal/adapter/http/middleware"
	redisStore "marketplace-ledger/internal/adapter/storage/redis"
	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MetricsExporter observes requests and serves the scrape endpoint.
type MetricsExporter interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SettlementSvc   ports.SettlementService
	LedgerSvc       ports.LedgerService
	WithdrawalSvc   ports.WithdrawalService
	AdminBalanceSvc ports.AdminBalanceService
	ApprovalSvc     ports.ApprovalService
	SigSvc          ports.SignatureService
	NonceStore      ports.NonceStore
	TokenSvc        ports.TokenService
	Checkout        config.CheckoutConfig
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Metrics         MetricsExporter // nil = no /metrics and no latency histogram
	Mode            string
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	var obs middleware.HTTPObserver
	if deps.Metrics != nil {
		obs = deps.Metrics
	}

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger, obs))
	r.Use(middleware.MaxBodySize(1 << 20))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Checkout callbacks (HMAC) ---
	checkoutHandler := NewCheckoutHandler(deps.SettlementSvc)
	checkout := v1.Group("/checkout",
		rl("checkout"),
		middleware.CheckoutHMAC(deps.Checkout, deps.SigSvc, deps.NonceStore, deps.Logger),
	)
	{
		checkout.POST("/sales/:id/approved", checkoutHandler.SaleApproved)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	// --- Vendor routes ---
	vendorHandler := NewVendorHandler(deps.LedgerSvc, deps.WithdrawalSvc)
	vendor := v1.Group("/vendor", jwtAuth, middleware.RequireRole(domain.RoleVendor))
	{
		vendor.GET("/balance", rl("vendor"), vendorHandler.GetBalance)
		vendor.POST("/withdrawals/code", rl("vendor_withdrawals"), vendorHandler.IssueWithdrawalCode)
		vendor.POST("/withdrawals", rl("vendor_withdrawals"), vendorHandler.RequestWithdrawal)
	}

	// --- Admin routes ---
	adminHandler := NewAdminHandler(deps.WithdrawalSvc, deps.AdminBalanceSvc, deps.ApprovalSvc)
	admin := v1.Group("/admin", jwtAuth, middleware.RequireRole(domain.RoleAdmin))
	{
		admin.GET("/withdrawals", rl("admin"), adminHandler.ListWithdrawals)
		admin.POST("/withdrawals/:id/decision", rl("admin"), adminHandler.DecideWithdrawal)
		admin.POST("/withdrawals/:id/paid", rl("admin"), adminHandler.MarkWithdrawalPaid)

		admin.GET("/balance", rl("admin"), adminHandler.GetBalance)
		admin.POST("/balance/recalculate", rl("admin"), adminHandler.RecalculateBalance)

		admin.GET("/sales/cancelled", rl("admin"), adminHandler.ListCancelledSales)
		admin.POST("/sales/:id/approval-code", rl("admin_approval"), adminHandler.RequestApprovalCode)
		admin.POST("/sales/:id/approval", rl("admin_approval"), adminHandler.ConfirmApproval)
	}

	return r
}
