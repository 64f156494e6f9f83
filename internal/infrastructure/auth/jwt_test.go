package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdesk/backend/internal/infrastructure/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                "test-secret-key-for-jwt-signing-only",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "bizdesk-test",
	}
}

func TestJWTService(t *testing.T) {
	svc := NewJWTService(testJWTConfig())
	userID := uuid.New()

	t.Run("round trip preserves identity and grants", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(GenerateTokenInput{
			UserID:      userID,
			Username:    "controller",
			Permissions: []string{PermissionViewReports},
		})
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "controller", claims.Username)
		assert.True(t, claims.HasPermission(PermissionViewReports))
		assert.False(t, claims.HasPermission("order:write"))
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "another-secret-entirely-for-testing",
			AccessTokenExpiration: 15 * time.Minute,
			Issuer:                "bizdesk-test",
		})
		token, err := other.GenerateAccessToken(GenerateTokenInput{UserID: userID})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		shortLived := NewJWTService(config.JWTConfig{
			Secret:                "test-secret-key-for-jwt-signing-only",
			AccessTokenExpiration: -time.Minute,
			Issuer:                "bizdesk-test",
		})
		token, err := shortLived.GenerateAccessToken(GenerateTokenInput{UserID: userID})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestClaimsAuthorizer(t *testing.T) {
	authz := NewClaimsAuthorizer()
	userID := uuid.New()

	claimsFor := func(permissions ...string) *Claims {
		return &Claims{UserID: userID.String(), Permissions: permissions}
	}

	t.Run("grants with reporting permission", func(t *testing.T) {
		ctx := WithClaims(context.Background(), claimsFor(PermissionViewReports))
		ok, err := authz.CanViewReports(ctx, userID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("denies without the grant", func(t *testing.T) {
		ctx := WithClaims(context.Background(), claimsFor("invoice:read"))
		ok, err := authz.CanViewReports(ctx, userID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("denies when no claims are attached", func(t *testing.T) {
		ok, err := authz.CanViewReports(context.Background(), userID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("denies a subject mismatch", func(t *testing.T) {
		ctx := WithClaims(context.Background(), claimsFor(PermissionViewReports))
		ok, err := authz.CanViewReports(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
