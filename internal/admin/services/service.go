package services

import (
	"context"

	"fogexplore/internal/players"
	"fogexplore/internal/players/models"
	"fogexplore/pkg/database"
)

// Service implements the operator-facing account management operations
type Service struct {
	repository *Repository
}

// NewService creates a new admin service
func NewService(mongodb *database.MongoDB) *Service {
	return &Service{repository: NewRepository(mongodb)}
}

// ListUsers returns every account, password hashes excluded
func (s *Service) ListUsers(ctx context.Context) ([]models.Player, error) {
	return s.repository.ListAll(ctx)
}

// GetUser loads one account by id
func (s *Service) GetUser(ctx context.Context, userID string) (*models.Player, error) {
	oid, err := players.ParseID(userID)
	if err != nil {
		return nil, err
	}
	return s.repository.GetByID(ctx, oid)
}

// DeleteUser removes an account by id
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	oid, err := players.ParseID(userID)
	if err != nil {
		return err
	}
	return s.repository.Delete(ctx, oid)
}
