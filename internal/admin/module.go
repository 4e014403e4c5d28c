package admin

import (
	"log"

	"fogexplore/internal/admin/routes"
	adminServices "fogexplore/internal/admin/services"
	"fogexplore/internal/auth"
	"fogexplore/pkg/database"
	"fogexplore/pkg/middleware"
	"fogexplore/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the operator management module
type Module struct {
	*module.BaseModule
	service    *adminServices.Service
	authModule *auth.Module
}

// New creates a new admin module instance
func New(mongodb *database.MongoDB, redis *database.Redis, authModule *auth.Module) *Module {
	return &Module{
		BaseModule: module.NewBaseModule("admin", mongodb, redis),
		service:    adminServices.NewService(mongodb),
		authModule: authModule,
	}
}

// GetService returns the admin service instance
func (m *Module) GetService() *adminServices.Service {
	return m.service
}

// Routes registers the module's health route on a chi router
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	authMiddleware := middleware.NewAuthMiddleware(m.authModule.GetTokenService())
	routes.RegisterAdminRoutes(api, basePath, m.service, m.authModule.GetService(), authMiddleware)
	log.Printf("Admin module unified routes registered at %s", basePath)
}
