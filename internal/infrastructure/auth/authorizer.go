package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// WithClaims returns a context carrying the authenticated claims
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext retrieves the authenticated claims, if any
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// ClaimsAuthorizer grants report access from the claims attached to the
// request context. Absent claims, a subject mismatch or a missing grant all
// deny; there is no allow-by-default path.
type ClaimsAuthorizer struct{}

// NewClaimsAuthorizer creates a new ClaimsAuthorizer
func NewClaimsAuthorizer() *ClaimsAuthorizer {
	return &ClaimsAuthorizer{}
}

// CanViewReports reports whether the context's claims authorize the subject
func (a *ClaimsAuthorizer) CanViewReports(ctx context.Context, subjectID uuid.UUID) (bool, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return false, nil
	}
	if claims.UserID != subjectID.String() {
		return false, nil
	}
	return claims.HasPermission(PermissionViewReports), nil
}
