package game

import (
	"log"

	"fogexplore/internal/auth"
	"fogexplore/internal/game/routes"
	gameServices "fogexplore/internal/game/services"
	"fogexplore/pkg/database"
	"fogexplore/pkg/middleware"
	"fogexplore/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the game-state sync module
type Module struct {
	*module.BaseModule
	service    *gameServices.Service
	authModule *auth.Module
}

// New creates a new game module instance
func New(mongodb *database.MongoDB, redis *database.Redis, authModule *auth.Module) *Module {
	return &Module{
		BaseModule: module.NewBaseModule("game", mongodb, redis),
		service:    gameServices.NewService(mongodb),
		authModule: authModule,
	}
}

// GetService returns the game service instance
func (m *Module) GetService() *gameServices.Service {
	return m.service
}

// Routes registers the module's health route on a chi router
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	authMiddleware := middleware.NewAuthMiddleware(m.authModule.GetTokenService())
	routes.RegisterGameRoutes(api, basePath, m.service, authMiddleware)
	log.Printf("Game module unified routes registered at %s", basePath)
}
