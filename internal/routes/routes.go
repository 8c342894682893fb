// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers.
package routes

import (
	"crebito/internal/config"
	"crebito/internal/handlers"
	"crebito/internal/repositories"
	"crebito/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	cacheRepo := repositories.NewRedisCacheRepository(repositories.RedisClient)

	// Initialize services
	ledgerService := ledger.NewService(
		accountRepo,
		cacheRepo,
		ledger.Config{
			LockWait:          config.GetDurationEnv("LOCK_WAIT", ledger.DefaultLockWait),
			StatementCacheTTL: config.GetDurationEnv("STATEMENT_CACHE_TTL", ledger.DefaultCacheDuration),
		},
		&ledger.NoopMetricsCollector{},
	)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(ledgerService)

	app.Get("/health", handlers.HealthCheck)

	accounts := app.Group("/accounts")
	accounts.Post("/:id/transactions", accountHandler.CreateTransaction)
	accounts.Get("/:id/statement", accountHandler.GetStatement)
}
