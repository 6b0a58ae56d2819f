// Public gallery handlers.  Clients reach these routes with nothing but
// their 6-character access code; there is no account, no JWT.  Responses
// are sanitized through Session.Public and Photo.ClientView so storage
// paths and photographer ids never leak.

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/photoflow/photoflow/internal/middleware"
	"github.com/photoflow/photoflow/internal/repository"
	"github.com/photoflow/photoflow/internal/service"
)

// PublicGalleryHandler serves the unauthenticated gallery routes.
type PublicGalleryHandler struct {
	Sessions  *repository.SessionRepo
	Photos    *repository.PhotoRepo
	Selection *service.SelectionService
	// Redis and CachePrefix drive gallery cache invalidation after
	// selection writes.  Redis may be nil.
	Redis       *redis.Client
	CachePrefix string
}

func NewPublicGalleryHandler(sessions *repository.SessionRepo, photos *repository.PhotoRepo, selection *service.SelectionService) *PublicGalleryHandler {
	if sessions == nil || photos == nil || selection == nil {
		panic("nil dependency passed to NewPublicGalleryHandler")
	}
	return &PublicGalleryHandler{Sessions: sessions, Photos: photos, Selection: selection}
}

type selectPhotoReq struct {
	Category    string  `json:"category"`
	Selected    bool    `json:"selected"`
	ClientNotes *string `json:"client_notes"`
}

// galleryNotFound hides whether a code is unknown or the session has been
// archived; both read as a missing gallery from outside.
func galleryNotFound(c echo.Context) error {
	return errJSON(c, http.StatusNotFound, repository.CodeGalleryNotFound, "gallery not found")
}

// ViewGallery returns the client view of a session: sanitized session
// data, the photo grid and the running selection statistics.
func (h *PublicGalleryHandler) ViewGallery(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	session, err := h.Sessions.FindByAccessCode(code)
	if err != nil {
		return galleryNotFound(c)
	}
	photos := h.Photos.FindBySession(session.ID)
	view := make([]map[string]any, 0, len(photos))
	for _, p := range photos {
		view = append(view, p.ClientView())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"session": session.Public(),
		"photos":  view,
		"stats":   h.Photos.Stats(session.ID),
	})
}

// SelectPhoto toggles one selection flag on one photo.  Limit violations
// come back as 400 with the category and cap in the error body.
func (h *PublicGalleryHandler) SelectPhoto(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	photoID, ok := pathID(c, "photo_id")
	if !ok {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid photo id")
	}
	var req selectPhotoReq
	if err := c.Bind(&req); err != nil || req.Category == "" {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "category required")
	}

	photo, stats, err := h.Selection.UpdateSelection(code, service.SelectionRequest{
		PhotoID:     photoID,
		Category:    req.Category,
		Selected:    req.Selected,
		ClientNotes: req.ClientNotes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return galleryNotFound(c)
		}
		return domainError(c, err)
	}

	middleware.InvalidateGallery(c.Request().Context(), h.Redis, h.CachePrefix, code)
	return c.JSON(http.StatusOK, echo.Map{
		"photo": photo.ClientView(),
		"stats": stats,
	})
}
