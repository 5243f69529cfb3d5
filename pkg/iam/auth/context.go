package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hiredeck/talentgate/pkg/kernel"
)

const contextKey = "auth_context"

// AuthContext is the authenticated caller's identity, populated by the
// middleware and read by handlers.
type AuthContext struct {
	UserID kernel.UserID
	Email  kernel.Email
	Role   Role
}

// GetAuthContext extracts the caller's identity from the request context.
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authCtx, ok := c.Locals(contextKey).(*AuthContext)
	return authCtx, ok
}

func setAuthContext(c *fiber.Ctx, authCtx *AuthContext) {
	c.Locals(contextKey, authCtx)
}
