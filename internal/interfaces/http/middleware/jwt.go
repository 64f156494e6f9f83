package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bizdesk/backend/internal/infrastructure/auth"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// JWTAuthConfig holds the JWT middleware configuration.
type JWTAuthConfig struct {
	JWTService *auth.JWTService
	Logger     *zap.Logger
	// SkipPaths lists exact request paths that bypass authentication.
	SkipPaths []string
}

// JWTAuth validates the bearer token on each request and attaches the
// resulting claims to both the gin context and the request context. Requests
// without a valid token are rejected before reaching any handler.
func JWTAuth(cfg JWTAuthConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		token, err := extractBearerToken(c)
		if err != nil {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "authorization required")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(token)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Debug("Token validation failed",
					zap.String("path", c.Request.URL.Path),
					zap.Error(err))
			}
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				abortUnauthorized(c, dto.ErrCodeTokenExpired, "token has expired")
			default:
				abortUnauthorized(c, dto.ErrCodeTokenInvalid, "invalid token")
			}
			return
		}

		c.Set("claims", claims)
		c.Set("user_id", claims.UserID)
		c.Request = c.Request.WithContext(auth.WithClaims(c.Request.Context(), claims))
		c.Next()
	}
}

// GetJWTClaims retrieves the validated claims from the gin context.
func GetJWTClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get("claims")
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// GetJWTUserID retrieves the authenticated user ID from the gin context.
func GetJWTUserID(c *gin.Context) (string, bool) {
	claims, ok := GetJWTClaims(c)
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}

func extractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return "", errors.New("missing authorization header")
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", errors.New("invalid authorization header format")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}

func abortUnauthorized(c *gin.Context, code, message string) {
	requestID := c.GetString("request_id")
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(code, message, requestID))
}
