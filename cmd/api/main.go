package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	catalogUseCase "github.com/zakinadhif/cashierku/internal/domain/usecase/catalog"
	ledgerUseCase "github.com/zakinadhif/cashierku/internal/domain/usecase/ledger"

	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/api/handler"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/api/routes"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/database"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/logger"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/repository"
	timeProvider "github.com/zakinadhif/cashierku/internal/infrastructure/adapter/time"
	"github.com/zakinadhif/cashierku/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	dbConfig := database.CreateConfigFromViperConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations. Another process holding the store file surfaces as a
	// locked database, which is worth a few retries before giving up.
	migrate := func() error { return dbManager.MigrationManager().MigrateAll() }
	if err := database.RetryOnTransientError(context.Background(), database.DefaultRetryConfig(), migrate, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories and the unit of work
	productRepo := repository.NewProductRepository(dbManager.DB(), appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Initialize use cases
	catalogService := catalogUseCase.NewCatalogUseCase(productRepo, appLogger)
	ledgerService := ledgerUseCase.NewLedgerUseCase(uow, tp, appLogger, cfg.Catalog.MaxItemsPerTransaction)

	// Initialize API handlers
	productHandler := handler.NewProductHandler(catalogService, appLogger)
	transactionHandler := handler.NewTransactionHandler(ledgerService, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, productHandler, transactionHandler, healthHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if err := appLogger.Flush(); err != nil {
		log.Printf("Failed to flush logs: %v", err)
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig rejects configurations the process cannot run with and
// warns about production settings that are legal but suspicious
func validateConfig(cfg *config.Config) error {
	switch cfg.Environment {
	case config.Development, config.Production, config.Test:
	case "":
		return fmt.Errorf("environment is not set")
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	for _, timeout := range []struct {
		key   string
		value time.Duration
	}{
		{"server.readTimeout", cfg.Server.ReadTimeout},
		{"server.writeTimeout", cfg.Server.WriteTimeout},
		{"server.shutdownTimeout", cfg.Server.ShutdownTimeout},
		{"database.queryTimeout", cfg.Database.QueryTimeout},
	} {
		if timeout.value == 0 {
			missing = append(missing, timeout.key)
		}
	}

	switch cfg.Database.Driver {
	case "sqlite", "":
		if cfg.Database.Path == "" {
			missing = append(missing, "database.path (or CK_DB_PATH)")
		}
	case "postgres":
		for _, field := range []struct {
			key   string
			value string
		}{
			{"database.host (or CK_DB_HOST)", cfg.Database.Host},
			{"database.username (or CK_DB_USERNAME)", cfg.Database.Username},
			{"database.password (or CK_DB_PASSWORD)", cfg.Database.Password},
			{"database.database (or CK_DB_NAME)", cfg.Database.Database},
		} {
			if field.value == "" {
				missing = append(missing, field.key)
			}
		}
	default:
		return fmt.Errorf("invalid database driver: %s, must be sqlite or postgres", cfg.Database.Driver)
	}

	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	if cfg.Environment == config.Production {
		var warnings []string
		if cfg.Database.Driver == "postgres" {
			switch strings.ToLower(cfg.Database.SSLMode) {
			case "require", "verify-ca", "verify-full":
			default:
				warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca', or 'verify-full' in production")
			}
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}
		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
