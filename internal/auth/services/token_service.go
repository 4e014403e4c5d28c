package services

import (
	"errors"
	"fmt"
	"time"

	"fogexplore/internal/auth/models"
	"fogexplore/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "fogexplore"

// TokenService mints and verifies the signed credentials used by every
// protected route
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service signing with the configured secret
func NewTokenService() *TokenService {
	return &TokenService{secret: config.GetJWTSecret()}
}

// GenerateRegistrationToken creates the long-lived credential issued right
// after account creation (claims: user id and role)
func (s *TokenService) GenerateRegistrationToken(userID, role string) (string, time.Time, error) {
	expiresAt := time.Now().Add(config.GetRegistrationTokenTTL())

	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
		"iss":     tokenIssuer,
	}

	return s.sign(claims, expiresAt)
}

// GenerateSessionToken creates the day-long credential issued on login
// (claims: user id and email)
func (s *TokenService) GenerateSessionToken(userID, email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(config.GetSessionTokenTTL())

	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    "player",
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
		"iss":     tokenIssuer,
	}

	return s.sign(claims, expiresAt)
}

// GenerateAdminToken creates the short-lived operator credential
func (s *TokenService) GenerateAdminToken(email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(config.GetAdminTokenTTL())

	claims := jwt.MapClaims{
		"email": email,
		"role":  "admin",
		"jti":   uuid.NewString(),
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
		"iss":   tokenIssuer,
	}

	return s.sign(claims, expiresAt)
}

func (s *TokenService) sign(claims jwt.MapClaims, expiresAt time.Time) (string, time.Time, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// ValidateToken verifies a signed credential and returns the identity it
// carries. Expired or tampered tokens fail here, before any handler runs.
func (s *TokenService) ValidateToken(tokenString string) (*models.AuthenticatedUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &models.AuthenticatedUser{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, nil
}
