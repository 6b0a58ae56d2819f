package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/photoflow/photoflow/internal/handler"
	"github.com/photoflow/photoflow/internal/middleware"
)

// RegisterCommerceOwner registers the photographer-scoped commerce
// endpoints under /api/commerce: package management, order tracking and
// the sales dashboard.
func RegisterCommerceOwner(e *echo.Echo, h *handler.CommerceOwnerHandler, jwtSecret string) {
	grp := e.Group(
		"/api/commerce",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(middleware.RolePhotographer, middleware.RoleAdmin),
	)

	grp.GET("/dashboard", h.Dashboard)

	// ---- Packages ----
	grp.POST("/packages", h.CreatePackage)
	grp.GET("/packages", h.ListPackages)
	grp.DELETE("/packages/:id", h.DeletePackage)

	// ---- Orders ----
	grp.GET("/orders", h.ListOrders)
	grp.GET("/orders/:id", h.GetOrder)
	grp.PATCH("/orders/:id/status", h.UpdateOrderStatus)
}
