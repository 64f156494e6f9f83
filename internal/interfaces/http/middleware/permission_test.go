package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdesk/backend/internal/infrastructure/auth"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
)

func newPermissionRouter(svc *auth.JWTService, permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(JWTAuth(JWTAuthConfig{JWTService: svc}))
	router.GET("/reports", RequirePermission(permission), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequirePermission(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute)

	issue := func(t *testing.T, permissions ...string) string {
		t.Helper()
		token, err := svc.GenerateAccessToken(auth.GenerateTokenInput{
			UserID:      uuid.New(),
			Username:    "bob",
			Permissions: permissions,
		})
		require.NoError(t, err)
		return token
	}

	t.Run("granted permission passes", func(t *testing.T) {
		router := newPermissionRouter(svc, auth.PermissionViewReports)
		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, auth.PermissionViewReports))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing permission is forbidden", func(t *testing.T) {
		router := newPermissionRouter(svc, auth.PermissionViewReports)
		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, "invoice:write"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		resp := decodeErrorResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeForbidden, resp.Error.Code)
	})

	t.Run("token with no permissions is forbidden", func(t *testing.T) {
		router := newPermissionRouter(svc, auth.PermissionViewReports)
		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
