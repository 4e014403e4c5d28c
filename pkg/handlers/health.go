package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"fogexplore/pkg/version"
)

// HealthResponse represents the health check response structure
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Status  string `json:"status"`
	Module  string `json:"module,omitempty"`
	Message string `json:"message,omitempty"`
}

// HealthHandler creates a generic health check handler for a given module
func HealthHandler(moduleName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			OK:     true,
			Status: "healthy",
			Module: moduleName,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			slog.Error("Failed to encode health response", "error", err, "module", moduleName)
		}
	}
}

// DependencyChecker is implemented by backing stores that can report liveness
type DependencyChecker interface {
	HealthCheck(ctx context.Context) error
}

// Dependency names a backing store probed by the health endpoint. A failed
// required dependency degrades the whole response; an optional one is only
// reported.
type Dependency struct {
	Name     string
	Check    DependencyChecker
	Required bool
}

// DependencyHealthHandler reports process health, build metadata and the
// state of every registered dependency. Probes share a short deadline so a
// hung store cannot stall the endpoint.
func DependencyHealthHandler(deps ...Dependency) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := version.Get()

		response := map[string]any{
			"status":     "healthy",
			"version":    info.Version,
			"git_commit": info.GitCommit,
			"go_version": info.GoVersion,
			"platform":   info.Platform,
		}

		checkCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		for _, dep := range deps {
			if err := dep.Check.HealthCheck(checkCtx); err != nil {
				response[dep.Name] = err.Error()
				if dep.Required {
					response["status"] = "degraded"
					status = http.StatusServiceUnavailable
				}
				continue
			}
			response[dep.Name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			slog.Error("Failed to encode health response", "error", err)
		}
	}
}
