package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizdesk/backend/internal/interfaces/http/dto"
)

// RequirePermission rejects requests whose token does not carry the given
// permission. Must run after JWTAuth; a request without claims is rejected.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetJWTClaims(c)
		if !ok {
			abortForbidden(c, "permission check requires authentication")
			return
		}
		if !claims.HasPermission(permission) {
			abortForbidden(c, "insufficient permissions")
			return
		}
		c.Next()
	}
}

func abortForbidden(c *gin.Context, message string) {
	requestID := c.GetString("request_id")
	c.AbortWithStatusJSON(http.StatusForbidden,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, message, requestID))
}
