package service

import (
	"testing"
	"time"

	"exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "exchange-ledger")
	userID := uuid.New()

	token, expiresAt, err := svc.Generate(userID, domain.UserRoleMerchant)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, domain.UserRoleMerchant, claims.Role)
}

func TestJWTTokenService_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService("secret-a", time.Hour, "exchange-ledger")
	other := NewJWTTokenService("secret-b", time.Hour, "exchange-ledger")

	token, _, err := svc.Generate(uuid.New(), domain.UserRoleUser)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Expired(t *testing.T) {
	svc := NewJWTTokenService("secret", -time.Minute, "exchange-ledger")

	token, _, err := svc.Generate(uuid.New(), domain.UserRoleUser)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Garbage(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour, "exchange-ledger")
	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}
