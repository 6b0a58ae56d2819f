package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/photoflow/photoflow/internal/handler"
)

// RegisterPublic registers the unauthenticated access-code routes.  No
// JWT here; the access code IS the credential, which is why every route
// in this group runs behind the rate limiter.  GET responses on the
// gallery are additionally cached.
func RegisterPublic(e *echo.Echo, pg *handler.PublicGalleryHandler, cl *handler.ClientHandler, cp *handler.CommercePublicHandler, rateLimit, cache echo.MiddlewareFunc) {
	grp := e.Group("/api/client", rateLimit)

	// ---- Gallery ----
	grp.GET("/gallery/:code", pg.ViewGallery, cache)
	grp.POST("/gallery/:code/photos/:photo_id/select", pg.SelectPhoto)

	// ---- Finalize flow ----
	grp.GET("/gallery/:code/summary", cl.Summary, cache)
	grp.POST("/gallery/:code/finalize", cl.Finalize)
	grp.POST("/gallery/:code/reset", cl.Reset)

	// ---- Commerce ----
	shop := e.Group("/api/commerce", rateLimit)
	shop.GET("/gallery/:code/packages", cp.ListPackages, cache)
	shop.POST("/gallery/:code/orders", cp.CreateOrder)
	shop.POST("/orders/:id/pay", cp.PayOrder)
}
