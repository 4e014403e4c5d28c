package auth

import (
	"log"

	"fogexplore/internal/auth/routes"
	authServices "fogexplore/internal/auth/services"
	"fogexplore/pkg/database"
	"fogexplore/pkg/mailer"
	"fogexplore/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the auth module
type Module struct {
	*module.BaseModule
	service *authServices.Service
}

// New creates a new auth module instance
func New(mongodb *database.MongoDB, redis *database.Redis, mail *mailer.Mailer) *Module {
	tokens := authServices.NewTokenService()
	service := authServices.NewService(mongodb, tokens, mail)

	return &Module{
		BaseModule: module.NewBaseModule("auth", mongodb, redis),
		service:    service,
	}
}

// GetService returns the auth service instance
func (m *Module) GetService() *authServices.Service {
	return m.service
}

// GetTokenService returns the token service used for route gating
func (m *Module) GetTokenService() *authServices.TokenService {
	return m.service.Tokens()
}

// Routes registers the module's health route on a chi router
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	routes.RegisterAuthRoutes(api, basePath, m.service)
	log.Printf("Auth module unified routes registered at %s", basePath)
}
