// Client finalize flow: summary, reset and the finalize call that freezes
// the selection and hands back the Lightroom filter code.

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/photoflow/photoflow/internal/lightroom"
	"github.com/photoflow/photoflow/internal/middleware"
	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/repository"
	"github.com/photoflow/photoflow/internal/service"
)

// ClientHandler serves the selection lifecycle endpoints behind an access
// code.
type ClientHandler struct {
	Sessions  *repository.SessionRepo
	Photos    *repository.PhotoRepo
	Selection *service.SelectionService

	Redis       *redis.Client
	CachePrefix string
}

func NewClientHandler(sessions *repository.SessionRepo, photos *repository.PhotoRepo, selection *service.SelectionService) *ClientHandler {
	if sessions == nil || photos == nil || selection == nil {
		panic("nil dependency passed to NewClientHandler")
	}
	return &ClientHandler{Sessions: sessions, Photos: photos, Selection: selection}
}

// Summary shows the client what they have picked so far, per category,
// before they commit.
func (h *ClientHandler) Summary(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	session, err := h.Sessions.FindByAccessCode(code)
	if err != nil {
		return galleryNotFound(c)
	}
	photos := h.Photos.FindBySession(session.ID)
	filters := lightroom.Generate(photos)
	return c.JSON(http.StatusOK, echo.Map{
		"session":   session.Public(),
		"stats":     h.Photos.Stats(session.ID),
		"selected":  filters,
		"finalized": session.Status != model.SessionActive,
	})
}

// Finalize freezes the selection.  The session moves to completed, the
// filter code and the pasteable filter string come back to the client,
// and a finalized event goes out to the broker.
func (h *ClientHandler) Finalize(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	result, err := h.Selection.Finalize(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return galleryNotFound(c)
		}
		return domainError(c, err)
	}

	middleware.InvalidateGallery(c.Request().Context(), h.Redis, h.CachePrefix, code)
	return c.JSON(http.StatusOK, echo.Map{
		"filter_code":      result.FilterCode,
		"selected_count":   result.SelectedCount,
		"total_photos":     result.TotalPhotos,
		"lightroom_filter": result.LightroomFilter,
		"instructions":     lightroom.Instructions,
		"session":          result.Session.Public(),
	})
}

// Reset clears every selection flag and note so the client can start
// over.  Only active sessions accept a reset.
func (h *ClientHandler) Reset(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	cleared, err := h.Selection.ResetSelections(code)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return galleryNotFound(c)
		}
		return domainError(c, err)
	}

	middleware.InvalidateGallery(c.Request().Context(), h.Redis, h.CachePrefix, code)
	return c.JSON(http.StatusOK, echo.Map{"cleared": cleared})
}
