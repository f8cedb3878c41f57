package handler

import (
	"github.com/Krittamet-rrt/walletapi/internal/adapter/http/middleware"
	redisStore "github.com/Krittamet-rrt/walletapi/internal/adapter/storage/redis"
	"github.com/Krittamet-rrt/walletapi/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PurchaseSvc    ports.PurchaseService
	LedgerSvc      ports.LedgerService
	AuthSvc        ports.AuthService
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
	r.Use(middleware.RequestID())
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

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	// --- Purchase ---
	purchaseHandler := NewPurchaseHandler(deps.PurchaseSvc)
	r.POST("/buy_item", rl("buy"), purchaseHandler.BuyItem)

	// --- Wallets ---
	walletHandler := NewWalletHandler(deps.LedgerSvc)
	wallets := r.Group("/wallets")
	{
		wallets.POST("", jwtAuth, rl("write"), walletHandler.Create)
		wallets.GET("/:wallet_id", walletHandler.Get)
		wallets.PATCH("/:wallet_id", jwtAuth, rl("write"), walletHandler.Update)
		wallets.DELETE("/:wallet_id", jwtAuth, rl("write"), walletHandler.Delete)
	}

	// --- Merchants ---
	merchantHandler := NewMerchantHandler(deps.LedgerSvc)
	merchants := r.Group("/merchants")
	{
		merchants.POST("", jwtAuth, rl("write"), merchantHandler.Create)
		merchants.GET("", merchantHandler.List)
		merchants.GET("/:merchant_id", merchantHandler.Get)
		merchants.PATCH("/:merchant_id", jwtAuth, rl("write"), merchantHandler.Update)
		merchants.DELETE("/:merchant_id", jwtAuth, rl("write"), merchantHandler.Delete)
	}

	// --- Items ---
	itemHandler := NewItemHandler(deps.LedgerSvc)
	items := r.Group("/items")
	{
		items.POST("/:merchant_id", jwtAuth, rl("write"), itemHandler.Create)
		items.GET("", itemHandler.List)
		items.GET("/:item_id", itemHandler.Get)
		items.PATCH("/:item_id", jwtAuth, rl("write"), itemHandler.Update)
		items.DELETE("/:item_id", jwtAuth, rl("write"), itemHandler.Delete)
	}

	// --- Transactions (read-only) ---
	transactionHandler := NewTransactionHandler(deps.LedgerSvc)
	transactions := r.Group("/transactions")
	{
		transactions.GET("", transactionHandler.List)
		transactions.GET("/:transaction_id", transactionHandler.Get)
	}

	// --- Users ---
	userHandler := NewUserHandler(deps.AuthSvc)
	users := r.Group("/users")
	{
		users.POST("/create", rl("auth_register"), userHandler.Register)
		users.POST("/login", rl("auth_login"), userHandler.Login)
		users.GET("/me", jwtAuth, userHandler.Me)
		users.GET("/:user_id", userHandler.Get)
		users.PATCH("/change_password", jwtAuth, userHandler.ChangePassword)
		users.PATCH("/update", jwtAuth, userHandler.Update)
	}

	return r
}
