package handler

import (
	"exchange-ledger/internal/adapter/http/middleware"
	redisStore "exchange-ledger/internal/adapter/storage/redis"
	"exchange-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	WalletSvc      ports.WalletService
	SpotSvc        ports.SpotService
	FuturesSvc     ports.FuturesService
	P2PSvc         ports.P2PService
	BankSvc        ports.BankService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.POST("", rl("reads"), walletHandler.Create)
		wallets.GET("", rl("reads"), walletHandler.List)
		wallets.GET("/type/:type", rl("reads"), walletHandler.GetByType)
		wallets.GET("/:id", rl("reads"), walletHandler.Get)
	}

	spotHandler := NewSpotHandler(deps.SpotSvc)
	spot := v1.Group("/spot", jwtAuth)
	{
		spot.POST("/buy", rl("trading"), spotHandler.Buy)
		spot.POST("/sell", rl("trading"), spotHandler.Sell)
		spot.GET("/history/:wallet_id", rl("reads"), spotHandler.History)
	}

	futuresHandler := NewFuturesHandler(deps.FuturesSvc)
	futures := v1.Group("/futures", jwtAuth)
	{
		futures.POST("/open", rl("trading"), futuresHandler.Open)
		futures.POST("/:id/close", rl("trading"), futuresHandler.Close)
		futures.GET("/positions", rl("reads"), futuresHandler.Positions)
		futures.GET("/history/:wallet_id", rl("reads"), futuresHandler.History)
	}

	p2pHandler := NewP2PHandler(deps.P2PSvc)
	p2p := v1.Group("/p2p", jwtAuth)
	{
		p2p.GET("/merchants", rl("reads"), p2pHandler.Merchants)
		p2p.GET("/orders", rl("reads"), p2pHandler.ListOpen)
		p2p.GET("/orders/mine", rl("reads"), p2pHandler.MyOrders)
		p2p.POST("/orders", rl("p2p"), p2pHandler.CreateOrder)
		p2p.POST("/orders/:id/cancel", rl("p2p"), p2pHandler.CancelOrder)
		p2p.POST("/orders/:id/pay", rl("p2p"), p2pHandler.TransferPayment)
		p2p.POST("/orders/:id/release", rl("p2p"), middleware.RequireMerchant(), p2pHandler.ConfirmAndRelease)
	}

	bankHandler := NewBankHandler(deps.BankSvc)
	bank := v1.Group("/bank-accounts", jwtAuth)
	{
		bank.GET("", rl("reads"), bankHandler.List)
		bank.POST("", rl("reads"), bankHandler.Create)
		bank.DELETE("/:account_number", rl("reads"), bankHandler.Delete)
	}

	return r
}
