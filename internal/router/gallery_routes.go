package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/photoflow/photoflow/internal/handler"
	"github.com/photoflow/photoflow/internal/middleware"
)

// RegisterGallery registers the photographer-scoped gallery endpoints
// under /api/gallery.  All routes require a valid JWT and the
// PHOTOGRAPHER (or ADMIN) role.
func RegisterGallery(e *echo.Echo, g *handler.GalleryHandler, jwtSecret string) {
	grp := e.Group(
		"/api/gallery",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(middleware.RolePhotographer, middleware.RoleAdmin),
	)

	grp.GET("/dashboard", g.Dashboard)

	// ---- Sessions ----
	grp.POST("/sessions", g.CreateSession)
	grp.GET("/sessions", g.ListSessions)
	grp.GET("/sessions/:id", g.GetSession)
	grp.PATCH("/sessions/:id/status", g.UpdateSessionStatus)

	// ---- Photos ----
	grp.POST("/sessions/:id/photos", g.UploadPhotos)
	grp.GET("/sessions/:id/stats", g.SessionStats)

	// ---- Lightroom filters ----
	grp.GET("/sessions/:id/filters", g.SessionFilters)
	grp.GET("/sessions/:id/export", g.ExportFilters)
}

// RegisterWatermark registers the watermark settings and apply endpoints
// under /api/watermark, photographer-scoped.
func RegisterWatermark(e *echo.Echo, w *handler.WatermarkHandler, jwtSecret string) {
	grp := e.Group(
		"/api/watermark",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(middleware.RolePhotographer, middleware.RoleAdmin),
	)

	grp.GET("/settings", w.GetSettings)
	grp.PUT("/settings", w.UpdateSettings)
	grp.POST("/apply", w.Apply)
	grp.POST("/apply-batch", w.ApplyBatch)
	grp.GET("/preview", w.Preview)
}
