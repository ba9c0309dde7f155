package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-go/internal/infrastructure/security"
	"github.com/artfolio/artfolio-go/pkg/config"
)

func configureAdmin(t *testing.T, password string) {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)

	prevHash, prevSecret := config.AdminPasswordHash, config.JWTSecret
	config.AdminPasswordHash = hash
	config.JWTSecret = "test-secret"
	t.Cleanup(func() {
		config.AdminPasswordHash = prevHash
		config.JWTSecret = prevSecret
	})
}

func TestLoginIssuesValidAdminToken(t *testing.T) {
	configureAdmin(t, "correct horse")
	svc := NewAuthService(newTestLogger(t))

	token, err := svc.Login("correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	configureAdmin(t, "correct horse")
	svc := NewAuthService(newTestLogger(t))

	_, err := svc.Login("battery staple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginFailsWhenUnconfigured(t *testing.T) {
	prevHash := config.AdminPasswordHash
	config.AdminPasswordHash = ""
	t.Cleanup(func() { config.AdminPasswordHash = prevHash })

	svc := NewAuthService(newTestLogger(t))
	_, err := svc.Login("anything")
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	configureAdmin(t, "correct horse")
	svc := NewAuthService(newTestLogger(t))

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
