package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"fogexplore/internal/admin"
	"fogexplore/internal/auth"
	"fogexplore/internal/game"
	"fogexplore/internal/scheduler"
	"fogexplore/internal/users"
	"fogexplore/pkg/app"
	"fogexplore/pkg/config"
	"fogexplore/pkg/handlers"
	"fogexplore/pkg/mailer"
	"fogexplore/pkg/module"
	"fogexplore/pkg/version"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	_ "go.uber.org/automaxprocs"
)

// customLoggerMiddleware logs requests but excludes health check endpoints
func customLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/health") {
			next.ServeHTTP(w, r)
			return
		}
		middleware.Logger(next).ServeHTTP(w, r)
	})
}

// corsMiddleware answers preflights and tags responses for the configured
// web client origins
func corsMiddleware(next http.Handler) http.Handler {
	allowed := config.GetAllowedOrigins()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		for _, candidate := range allowed {
			if candidate == origin || candidate == "*" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				break
			}
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	log.Printf("Version: %s | Build: %s", version.GetVersionString(), version.Get().BuildDate)
	log.Printf("CPUs: %d | GOMAXPROCS: %d", runtime.NumCPU(), runtime.GOMAXPROCS(0))

	ctx := context.Background()

	appCtx, err := app.InitializeApp("fogexplore")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer appCtx.Shutdown(ctx)

	r := chi.NewRouter()

	r.Use(customLoggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", healthHandler(appCtx))

	// Initialize modules
	authModule := auth.New(appCtx.MongoDB, appCtx.Redis, mailer.New())
	gameModule := game.New(appCtx.MongoDB, appCtx.Redis, authModule)
	usersModule := users.New(appCtx.MongoDB, appCtx.Redis, authModule)
	adminModule := admin.New(appCtx.MongoDB, appCtx.Redis, authModule)
	schedulerModule := scheduler.New(appCtx.MongoDB, appCtx.Redis)

	modules := []module.Module{authModule, gameModule, usersModule, adminModule, schedulerModule}

	apiPrefix := config.GetAPIPrefix()

	humaConfig := huma.DefaultConfig("Fog Explore API Server", "1.0.0")
	humaConfig.Info.Description = "Location-based exploration game backend"
	humaConfig.Servers = []*huma.Server{
		{URL: apiPrefix, Description: "Default server"},
	}

	var unifiedAPI huma.API
	if apiPrefix == "" {
		unifiedAPI = humachi.New(r, humaConfig)
	} else {
		r.Route(apiPrefix, func(prefixRouter chi.Router) {
			prefixRouter.Get("/health", healthHandler(appCtx))
			unifiedAPI = humachi.New(prefixRouter, humaConfig)
		})
	}

	// Route paths already carry their module segment, so every module
	// registers at the prefix root
	authModule.RegisterUnifiedRoutes(unifiedAPI, "")
	gameModule.RegisterUnifiedRoutes(unifiedAPI, "")
	usersModule.RegisterUnifiedRoutes(unifiedAPI, "")
	adminModule.RegisterUnifiedRoutes(unifiedAPI, "")

	for _, mod := range modules {
		go mod.StartBackgroundTasks(ctx)
	}

	var handler http.Handler = r
	if config.GetBoolEnv("ENABLE_TELEMETRY", false) {
		handler = otelhttp.NewHandler(r, "fogexplore")
	}

	port := app.GetPort("8080")
	host := config.GetHost()

	srv := &http.Server{
		Addr:         host + ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting API server", slog.String("addr", srv.Addr), slog.String("prefix", apiPrefix))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Received shutdown signal, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	for _, mod := range modules {
		mod.Stop()
	}

	appCtx.Shutdown(shutdownCtx)

	slog.Info("Shutdown completed")
}

// healthHandler reports process health plus the state of both backing
// stores. Excluded from request logging. Mongo is required, the Redis
// cache is only reported when configured.
func healthHandler(appCtx *app.AppContext) http.HandlerFunc {
	deps := []handlers.Dependency{
		{Name: "mongodb", Check: appCtx.MongoDB, Required: true},
	}
	if appCtx.Redis != nil {
		deps = append(deps, handlers.Dependency{Name: "redis", Check: appCtx.Redis})
	}
	return handlers.DependencyHealthHandler(deps...)
}
