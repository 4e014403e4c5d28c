package app

import (
	"context"
	"log"
	"log/slog"
	"sync"

	"fogexplore/pkg/config"
	"fogexplore/pkg/database"
	"fogexplore/pkg/logging"

	"github.com/joho/godotenv"
)

// AppContext holds the shared application context and dependencies
type AppContext struct {
	MongoDB       *database.MongoDB
	Redis         *database.Redis
	ServiceName   string
	shutdownOnce  sync.Once
	shutdownFuncs []func(context.Context) error
}

// InitializeApp initializes common application dependencies
func InitializeApp(serviceName string) (*AppContext, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	logging.Setup(serviceName)

	ctx := context.Background()

	mongodb, err := database.NewMongoDB(ctx, serviceName)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		return nil, err
	}
	slog.Info("Connected to MongoDB")

	redis, err := database.NewRedis(ctx)
	if err != nil {
		// The directions cache degrades gracefully without Redis
		slog.Error("Failed to connect to Redis, continuing without cache", "error", err)
		redis = nil
	} else {
		slog.Info("Connected to Redis")
	}

	appCtx := &AppContext{
		MongoDB:     mongodb,
		Redis:       redis,
		ServiceName: serviceName,
	}

	appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, mongodb.Close)
	if redis != nil {
		appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, func(ctx context.Context) error {
			return redis.Close()
		})
	}

	return appCtx, nil
}

// Shutdown gracefully shuts down all application dependencies. Safe to
// call more than once: later calls are no-ops, so a deferred Shutdown can
// back up the explicit one on the signal path.
func (a *AppContext) Shutdown(ctx context.Context) error {
	a.shutdownOnce.Do(func() {
		slog.Info("Shutting down application", "service", a.ServiceName)

		for _, shutdown := range a.shutdownFuncs {
			if err := shutdown(ctx); err != nil {
				slog.Error("Error during shutdown", "error", err)
			}
		}

		slog.Info("Application shutdown completed", "service", a.ServiceName)
	})
	return nil
}

// GetPort returns the port from environment or default
func GetPort(defaultPort string) string {
	return config.GetEnv("PORT", defaultPort)
}

// IsProduction returns true if running in production environment
func IsProduction() bool {
	env := config.GetEnv("APP_ENV", "development")
	return env == "production"
}

// IsDevelopment returns true if running in development environment
func IsDevelopment() bool {
	return !IsProduction()
}
