package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdesk/backend/internal/infrastructure/auth"
	"github.com/bizdesk/backend/internal/infrastructure/config"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
)

func newTestJWTService(t *testing.T, expiration time.Duration) *auth.JWTService {
	t.Helper()
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-that-is-long-enough",
		AccessTokenExpiration: expiration,
		Issuer:                "bizdesk-test",
	})
}

func newProtectedRouter(svc *auth.JWTService, skipPaths ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(JWTAuth(JWTAuthConfig{JWTService: svc, SkipPaths: skipPaths}))
	router.GET("/protected", func(c *gin.Context) {
		userID, _ := GetJWTUserID(c)
		claims, ok := auth.ClaimsFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"user_id":    userID,
			"has_claims": ok && claims != nil,
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestJWTAuth(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute)
	userID := uuid.New()

	t.Run("valid token reaches handler with claims", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(auth.GenerateTokenInput{
			UserID:      userID,
			Username:    "alice",
			Permissions: []string{auth.PermissionViewReports},
		})
		require.NoError(t, err)

		router := newProtectedRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, true, body["has_claims"])
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router := newProtectedRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeErrorResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		router := newProtectedRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected as invalid", func(t *testing.T) {
		router := newProtectedRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeErrorResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeTokenInvalid, resp.Error.Code)
	})

	t.Run("expired token reports expiry", func(t *testing.T) {
		expiredSvc := newTestJWTService(t, -time.Minute)
		token, err := expiredSvc.GenerateAccessToken(auth.GenerateTokenInput{
			UserID:   userID,
			Username: "alice",
		})
		require.NoError(t, err)

		router := newProtectedRouter(expiredSvc)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeErrorResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeTokenExpired, resp.Error.Code)
	})

	t.Run("skip paths bypass authentication", func(t *testing.T) {
		router := newProtectedRouter(svc, "/health")
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
