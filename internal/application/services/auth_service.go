package services

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/security"
	"github.com/artfolio/artfolio-go/pkg/config"
)

// AuthService handles admin authentication for catalog management.
type AuthService struct {
	logger *logging.ChanneledLogger
}

// NewAuthService creates a new auth application service
func NewAuthService(logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{logger: logger}
}

// Login verifies the admin password and issues a signed token.
func (s *AuthService) Login(password string) (string, error) {
	if config.AdminPasswordHash == "" {
		return "", fmt.Errorf("admin access is not configured")
	}
	if config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret is not configured")
	}

	if !security.VerifyPassword(password, config.AdminPasswordHash) {
		s.logger.Auth().Warn("Admin login rejected")
		return "", fmt.Errorf("invalid credentials")
	}

	token, err := security.GenerateAdminToken(config.JWTSecret, config.TokenTTL)
	if err != nil {
		s.logger.Auth().Error("Token generation failed", "error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Auth().Info("Admin login succeeded")
	return token, nil
}

// ValidateToken checks a bearer token and confirms the admin role.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	claims, err := security.ValidateJWT(tokenString, config.JWTSecret)
	if err != nil {
		return nil, err
	}
	if !security.IsAdminClaims(claims) {
		return nil, fmt.Errorf("token does not grant admin access")
	}
	return claims, nil
}
