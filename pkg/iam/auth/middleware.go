package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/hiredeck/talentgate/pkg/logx"
)

// Middleware authenticates requests and enforces role requirements.
type Middleware struct {
	tokens  TokenService
	revoked RevocationStore
}

// NewMiddleware creates the auth middleware. revoked may be nil, in which case
// revocation checks are skipped.
func NewMiddleware(tokens TokenService, revoked RevocationStore) *Middleware {
	return &Middleware{
		tokens:  tokens,
		revoked: revoked,
	}
}

// Authenticate validates the bearer token and stores the caller's identity in
// the request context.
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrMissingToken()
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ErrInvalidToken().WithDetail("reason", "authorization header must be 'Bearer <token>'")
		}

		claims, err := m.tokens.ValidateAccessToken(parts[1])
		if err != nil {
			return ErrInvalidToken()
		}

		if m.revoked != nil && claims.TokenID != "" {
			revoked, err := m.revoked.IsRevoked(c.Context(), claims.TokenID)
			if err != nil {
				// Revocation store outage must not take authentication down
				// with it; the token signature already checked out.
				logx.Warnf("revocation check failed: %v", err)
			} else if revoked {
				return ErrTokenRevoked()
			}
		}

		setAuthContext(c, &AuthContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})

		return c.Next()
	}
}

// RequireAdmin rejects callers whose role is not admin. Must run after
// Authenticate.
func (m *Middleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}
		if !authCtx.Role.IsAdmin() {
			return ErrAdminRequired()
		}
		return c.Next()
	}
}
