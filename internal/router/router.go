package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/photoflow/photoflow/internal/handler"
	"github.com/photoflow/photoflow/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the photographer auth routes and their
// middleware.  Unauthenticated operations live under /api/auth; the only
// protected one is /api/auth/me.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts either a Bearer token (revoke all sessions) or a
	// refresh_token body (revoke one), so it runs without JWT middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/api/auth",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(middleware.RolePhotographer, middleware.RoleAdmin),
	)
	auth.GET("/me", a.Me)
}
