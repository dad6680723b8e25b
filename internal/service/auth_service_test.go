package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service"
)

func TestAuthService_GenerateAndValidate(t *testing.T) {
	svc := service.NewAuthService("test-secret")
	require.True(t, svc.Enabled())

	token, err := svc.GenerateToken(time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	valid, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.True(t, valid)
}

func TestAuthService_RejectsWrongSecret(t *testing.T) {
	token, err := service.NewAuthService("secret-a").GenerateToken(time.Hour)
	require.NoError(t, err)

	valid, err := service.NewAuthService("secret-b").ValidateToken(token)
	require.Error(t, err)
	require.False(t, valid)
}

func TestAuthService_RejectsExpiredToken(t *testing.T) {
	svc := service.NewAuthService("test-secret")

	token, err := svc.GenerateToken(-time.Minute)
	require.NoError(t, err)

	valid, err := svc.ValidateToken(token)
	require.Error(t, err)
	require.False(t, valid)
}

func TestAuthService_RejectsGarbage(t *testing.T) {
	svc := service.NewAuthService("test-secret")

	valid, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	require.False(t, valid)
}

func TestAuthService_Disabled(t *testing.T) {
	svc := service.NewAuthService("")
	require.False(t, svc.Enabled())

	_, err := svc.GenerateToken(time.Hour)
	require.ErrorIs(t, err, service.ErrInvalid)

	valid, err := svc.ValidateToken("anything")
	require.NoError(t, err)
	require.False(t, valid)
}
