package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/usecase/catalog"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/credential"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/invoice"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/storage"
	timeProvider "github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()
	registry := metrics.NewRegistry()

	// Connect to the database
	dbManager := database.NewManager(database.NewConfig(cfg.Database, cfg.Logger.Level), appLogger, tp)
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStartup()

	db, err := dbManager.Connect(startupCtx)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		appLogger.Flush()
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	// Run migrations and seed the catalog
	migrationMgr := dbManager.MigrationManager()
	if err := migrationMgr.MigrateAll(startupCtx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		appLogger.Flush()
		os.Exit(1)
	}
	if cfg.Database.SeedCatalog {
		if err := migrationMgr.SeedCatalog(startupCtx); err != nil {
			appLogger.Error("Failed to seed catalog", map[string]any{
				"error": err.Error(),
			})
		}
	}

	if cfg.Metrics.Enabled {
		if err := dbManager.StartPoolMonitor(registry); err != nil {
			appLogger.Warn("Connection pool monitor not started", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize adapters
	tokens, err := credential.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token service", map[string]any{
			"error": err.Error(),
		})
		appLogger.Flush()
		os.Exit(1)
	}
	images, err := storage.NewLocalStore(cfg.Storage.UploadDir, appLogger)
	if err != nil {
		appLogger.Error("Failed to prepare upload directory", map[string]any{
			"dir":   cfg.Storage.UploadDir,
			"error": err.Error(),
		})
		appLogger.Flush()
		os.Exit(1)
	}

	// Initialize repositories
	uow := dbManager.CreateUnitOfWork()
	userRepo := repository.NewUserRepository(db, appLogger)
	balanceRepo := repository.NewBalanceRepository(db, tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(db, appLogger)
	bannerRepo := repository.NewBannerRepository(db, appLogger)
	serviceRepo := repository.NewServiceRepository(db, appLogger)

	// Initialize use cases
	accountUseCase := account.NewAccountUseCase(
		userRepo,
		uow,
		credential.NewBcryptHasher(cfg.Auth.BcryptCost),
		tokens,
		images,
		tp,
		appLogger,
	)
	catalogUseCase := catalog.NewCatalogUseCase(bannerRepo, serviceRepo)
	ledgerUseCase := ledger.NewLedgerUseCase(
		uow,
		balanceRepo,
		serviceRepo,
		transactionRepo,
		invoice.NewUUIDGenerator(),
		registry,
		tp,
		appLogger,
	)

	// Initialize API handlers
	handlers := routes.Handlers{
		User: handler.NewUserHandler(accountUseCase, handler.UploadSettings{
			MaxSize:       cfg.Storage.MaxUploadSize,
			PublicBaseURL: cfg.Server.PublicBaseURL,
		}, appLogger),
		Transaction: handler.NewTransactionHandler(ledgerUseCase, appLogger),
		Catalog:     handler.NewCatalogHandler(catalogUseCase),
		Health:      handler.NewHealthHandler(tp),
	}
	gate := routes.Gate{
		Tokens:      tokens,
		Accounts:    accountUseCase,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, appLogger),
	}

	// Initialize Gin router
	router := gin.New()

	var observer middleware.RequestObserver
	if cfg.Metrics.Enabled {
		observer = registry
	}
	routes.SetupMiddlewares(router, appLogger, cfg.CORS, observer)
	if cfg.Metrics.Enabled {
		routes.SetupMetrics(router, cfg.Metrics.Path, registry.Handler())
	}
	routes.SetupRoutes(router, handlers, gate, cfg.Storage.UploadDir)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port (or PORT environment variable)")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate auth configuration
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or JWT_SECRET environment variable)")
	}

	if cfg.Auth.TokenTTL <= 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	// Validate database configuration
	if err := database.NewConfig(cfg.Database, cfg.Logger.Level).Validate(); err != nil {
		missingConfigs = append(missingConfigs, fmt.Sprintf("database (%v)", err))
	}

	if cfg.Storage.UploadDir == "" {
		missingConfigs = append(missingConfigs, "storage.uploadDir")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver != database.DriverSQLite && cfg.Database.URL == "" &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret is shorter than 32 bytes")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
