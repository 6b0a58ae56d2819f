package middleware // shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Role claim values issued at registration.  Every account starts as a
// photographer; ADMIN is reserved for operational tooling.
const (
	RolePhotographer = "PHOTOGRAPHER"
	RoleAdmin        = "ADMIN"
)

// RequireRole returns a middleware that enforces that the authenticated
// user carries one of the given roles in its JWT "role" claim.  Requests
// with a missing or disallowed role are aborted with 403.  It assumes
// JWTAuth already ran and stored the role in the context.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	// Build a set of allowed roles for constant-time lookups.
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := c.Get("role")
			role, ok := v.(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": echo.Map{"code": "ACCESS_DENIED", "message": "insufficient permissions"},
				})
			}
			return next(c)
		}
	}
}
