package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

// Handlers groups the request handlers mounted by SetupRoutes
type Handlers struct {
	User        *handler.UserHandler
	Transaction *handler.TransactionHandler
	Catalog     *handler.CatalogHandler
	Health      *handler.HealthHandler
}

// Gate holds what the request gate needs to authenticate and throttle callers
type Gate struct {
	Tokens      coreport.TokenService
	Accounts    usecase.AccountUseCase
	RateLimiter *middleware.RateLimiter // nil disables limiting
}

// SetupRoutes configures all the routes for the API.
// Interceptors run in the order they are listed on each route.
func SetupRoutes(router *gin.Engine, h Handlers, gate Gate, uploadDir string) {
	authenticate := middleware.Authenticate(gate.Tokens)
	resolveUser := middleware.ResolveUser(gate.Accounts)
	rateLimit := middleware.RateLimit(gate.RateLimiter)

	router.GET("/", h.Health.Health)
	uploads := router.Group(handler.UploadsRoute, noSniff)
	uploads.Static("/", uploadDir)

	// Membership
	router.POST("/registration", rateLimit, middleware.BindJSON[dto.RegisterRequest](), h.User.Register)
	router.POST("/login", rateLimit, middleware.BindJSON[dto.LoginRequest](), h.User.Login)

	profile := router.Group("/profile", authenticate)
	{
		profile.GET("", h.User.GetProfile)
		profile.PUT("/update", middleware.BindJSON[dto.UpdateProfileRequest](), h.User.UpdateProfile)
		profile.PUT("/image", h.User.UpdateProfileImage)
	}

	// Information
	router.GET("/banner", h.Catalog.ListBanners)
	router.GET("/services", authenticate, h.Catalog.ListServices)

	// Transaction
	ledger := router.Group("", authenticate, resolveUser)
	{
		ledger.GET("/balance", h.Transaction.GetBalance)
		ledger.POST("/topup", middleware.BindJSON[dto.TopUpRequest](), h.Transaction.TopUp)
		ledger.POST("/transaction", middleware.BindJSON[dto.TransactionRequest](), h.Transaction.Pay)
		ledger.GET("/transaction/history", middleware.BindQuery[dto.HistoryQuery](), h.Transaction.History)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Response{Status: 999, Message: "Not Found", Data: nil})
	})
}

// SetupMetrics exposes the Prometheus handler on path
func SetupMetrics(router *gin.Engine, path string, metrics http.Handler) {
	router.GET(path, gin.WrapH(metrics))
}

// SetupMiddlewares configures global middlewares for the API.
// The request logger and metrics wrap panic recovery so recovered requests are still recorded.
// observer may be nil when metrics are disabled.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, cors config.CORSConfig, observer middleware.RequestObserver) {
	router.Use(middleware.Logger(logger))
	if observer != nil {
		router.Use(middleware.Metrics(observer))
	}
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(cors))
}

// noSniff stops browsers from guessing a stored file's type from its bytes
func noSniff(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Next()
}
