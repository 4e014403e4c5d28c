package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fogexplore/internal/auth/dto"
	"fogexplore/internal/players"
	playersModels "fogexplore/internal/players/models"
	"fogexplore/pkg/config"
	"fogexplore/pkg/database"
	"fogexplore/pkg/mailer"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// One uniform answer avoids leaking which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotLoggedIn means a logout was requested for a player with no
	// recorded session baseline
	ErrNotLoggedIn = errors.New("user not logged in")
)

// Service orchestrates registration, login/logout and operator login
type Service struct {
	repository *Repository
	tokens     *TokenService
	mailer     *mailer.Mailer
}

// NewService creates the auth service with all dependencies
func NewService(mongodb *database.MongoDB, tokens *TokenService, mail *mailer.Mailer) *Service {
	return &Service{
		repository: NewRepository(mongodb),
		tokens:     tokens,
		mailer:     mail,
	}
}

// Tokens exposes the token service for route gating in other modules
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Register creates a new player account and issues its first credential.
// The welcome mail is best-effort: a delivery failure is logged and the
// registration still succeeds.
func (s *Service) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterData, error) {
	if err := dto.ValidateRegisterRequest(&req); err != nil {
		return nil, err
	}

	taken, err := s.repository.IdentityTaken(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, players.ErrDuplicateIdentity
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	player := &playersModels.Player{
		Username:       req.Username,
		Email:          req.Email,
		Password:       string(hash),
		Role:           playersModels.RolePlayer,
		Checkpoints:    []playersModels.Checkpoint{},
		PathHistory:    [][]float64{},
		FogClearedArea: [][]float64{},
		Preferences: playersModels.Preferences{
			DayNightCycle: true,
			SoundEnabled:  true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repository.Insert(ctx, player)
	if err != nil {
		return nil, err
	}
	player.ID = id

	token, _, err := s.tokens.GenerateRegistrationToken(id.Hex(), player.Role)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendWelcome(ctx, req.Email, req.Username); err != nil {
			slog.Warn("Welcome mail delivery failed", "email", req.Email, "error", err)
		}
	}

	return &dto.RegisterData{
		User:  player.Public(),
		Token: token,
	}, nil
}

// Login verifies credentials, marks the player online and issues a
// session token
func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginData, error) {
	player, err := s.repository.FindByEmailWithPassword(ctx, req.Email)
	if err != nil {
		// Unknown email answers identically to a wrong password
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.repository.MarkLoggedIn(ctx, player.ID, now); err != nil {
		return nil, err
	}
	player.LastLogin = &now
	player.IsOnline = true

	token, _, err := s.tokens.GenerateSessionToken(player.ID.Hex(), player.Email)
	if err != nil {
		return nil, err
	}

	return &dto.LoginData{
		Token: token,
		User:  player.Public(),
	}, nil
}

// Logout accrues the session delta into timePlayed and flips presence
// offline. Fails when the player never logged in.
func (s *Service) Logout(ctx context.Context, userID string) (*playersModels.Player, error) {
	oid, err := players.ParseID(userID)
	if err != nil {
		return nil, err
	}

	player, err := s.repository.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if player.LastLogin == nil {
		return nil, ErrNotLoggedIn
	}

	now := time.Now()
	delta := int64(now.Sub(*player.LastLogin).Seconds())
	if delta < 0 {
		delta = 0
	}

	return s.repository.CloseSession(ctx, oid, delta, now)
}

// AdminLogin checks the configuration-supplied operator credential pair
// and mints a short-lived admin token. The operator has no document in the
// users collection.
func (s *Service) AdminLogin(req dto.AdminLoginRequest) (string, error) {
	adminEmail := config.GetAdminEmail()
	adminHash := config.GetAdminPasswordHash()

	if adminEmail == "" || adminHash == "" {
		slog.Error("Admin login attempted but operator credentials are not configured")
		return "", ErrInvalidCredentials
	}

	if req.Email != adminEmail {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, _, err := s.tokens.GenerateAdminToken(req.Email)
	if err != nil {
		return "", err
	}
	return token, nil
}
