package users

import (
	"log"

	"fogexplore/internal/auth"
	"fogexplore/internal/users/routes"
	usersServices "fogexplore/internal/users/services"
	"fogexplore/pkg/database"
	"fogexplore/pkg/middleware"
	"fogexplore/pkg/module"
	"fogexplore/pkg/routing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the user profile and checkpoint module
type Module struct {
	*module.BaseModule
	service    *usersServices.Service
	authModule *auth.Module
}

// New creates a new users module instance. The Redis handle backs the
// directions cache and may be nil when caching is disabled.
func New(mongodb *database.MongoDB, redis *database.Redis, authModule *auth.Module) *Module {
	router := routing.NewClient(redis)

	return &Module{
		BaseModule: module.NewBaseModule("users", mongodb, redis),
		service:    usersServices.NewService(mongodb, router),
		authModule: authModule,
	}
}

// GetService returns the users service instance
func (m *Module) GetService() *usersServices.Service {
	return m.service
}

// Routes registers the module's health route on a chi router
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	authMiddleware := middleware.NewAuthMiddleware(m.authModule.GetTokenService())
	routes.RegisterUserRoutes(api, basePath, m.service, authMiddleware)
	log.Printf("Users module unified routes registered at %s", basePath)
}
