// Watermark settings and the simulated apply pipeline.  Applying a
// watermark derives the "_wm" output path next to the stored file; the
// heavy lifting belongs to the image workers, not this API.

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/repository"
)

// WatermarkHandler bundles the repositories behind the watermark routes.
type WatermarkHandler struct {
	Settings *repository.WatermarkRepo
	Sessions *repository.SessionRepo
	Photos   *repository.PhotoRepo
	// DefaultText seeds a photographer's first settings row, usually the
	// studio name from configuration.
	DefaultText string
}

func NewWatermarkHandler(settings *repository.WatermarkRepo, sessions *repository.SessionRepo, photos *repository.PhotoRepo) *WatermarkHandler {
	if settings == nil || sessions == nil || photos == nil {
		panic("nil repository passed to NewWatermarkHandler")
	}
	return &WatermarkHandler{Settings: settings, Sessions: sessions, Photos: photos}
}

type updateWatermarkReq struct {
	Enabled          *bool    `json:"enabled"`
	Type             *string  `json:"type"`
	Text             *string  `json:"text"`
	Position         *string  `json:"position"`
	Opacity          *float64 `json:"opacity"`
	Size             *string  `json:"size"`
	Color            *string  `json:"color"`
	ApplyToPreviews  *bool    `json:"apply_to_previews"`
	ApplyToDownloads *bool    `json:"apply_to_downloads"`
}

type applyWatermarkReq struct {
	PhotoID uint64 `json:"photo_id"`
}

type applyBatchReq struct {
	SessionID uint64 `json:"session_id"`
}

// GetSettings returns the photographer's watermark configuration,
// creating the default on first access.
func (h *WatermarkHandler) GetSettings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	return c.JSON(http.StatusOK, h.Settings.GetOrCreate(uid, h.DefaultText))
}

// UpdateSettings patches the watermark configuration.  Only present
// fields change; unknown positions are rejected.
func (h *WatermarkHandler) UpdateSettings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	var req updateWatermarkReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid body")
	}
	if req.Position != nil && !model.ValidWatermarkPosition(*req.Position) {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "unknown watermark position")
	}
	if req.Opacity != nil && (*req.Opacity < 0 || *req.Opacity > 1) {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "opacity must be within 0..1")
	}

	ws := h.Settings.Update(uid, h.DefaultText, func(w *model.WatermarkSettings) {
		if req.Enabled != nil {
			w.Enabled = *req.Enabled
		}
		if req.Type != nil {
			w.Type = *req.Type
		}
		if req.Text != nil {
			w.Text = *req.Text
		}
		if req.Position != nil {
			w.Position = *req.Position
		}
		if req.Opacity != nil {
			w.Opacity = *req.Opacity
		}
		if req.Size != nil {
			w.Size = *req.Size
		}
		if req.Color != nil {
			w.Color = *req.Color
		}
		if req.ApplyToPreviews != nil {
			w.ApplyToPreviews = *req.ApplyToPreviews
		}
		if req.ApplyToDownloads != nil {
			w.ApplyToDownloads = *req.ApplyToDownloads
		}
	})
	return c.JSON(http.StatusOK, ws)
}

// Apply watermarks a single photo and returns the derived output path.
func (h *WatermarkHandler) Apply(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	var req applyWatermarkReq
	if err := c.Bind(&req); err != nil || req.PhotoID == 0 {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "photo_id required")
	}
	photo, err := h.Photos.GetByID(req.PhotoID)
	if err != nil {
		return domainError(c, err)
	}
	if photo.PhotographerID != uid {
		return errJSON(c, http.StatusForbidden, repository.CodeAccessDenied, "photo belongs to another photographer")
	}
	ws := h.Settings.GetOrCreate(uid, h.DefaultText)
	return c.JSON(http.StatusOK, echo.Map{
		"photo_id":         photo.ID,
		"source":           photo.FilePath,
		"watermarked_path": model.WatermarkedPath(photo.FilePath),
		"settings":         ws,
	})
}

// ApplyBatch watermarks every photo of one session.
func (h *WatermarkHandler) ApplyBatch(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	var req applyBatchReq
	if err := c.Bind(&req); err != nil || req.SessionID == 0 {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "session_id required")
	}
	session, err := h.Sessions.GetByIDForPhotographer(req.SessionID, uid)
	if err != nil {
		return domainError(c, err)
	}
	photos := h.Photos.FindBySession(session.ID)
	results := make([]echo.Map, 0, len(photos))
	for _, p := range photos {
		results = append(results, echo.Map{
			"photo_id":         p.ID,
			"watermarked_path": model.WatermarkedPath(p.FilePath),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"session_id": session.ID,
		"processed":  len(results),
		"results":    results,
	})
}

// Preview shows how the current settings would mark a sample frame.
func (h *WatermarkHandler) Preview(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	ws := h.Settings.GetOrCreate(uid, h.DefaultText)
	return c.JSON(http.StatusOK, echo.Map{
		"sample":   "/static/watermark-sample.jpg",
		"preview":  model.WatermarkedPath("/static/watermark-sample.jpg"),
		"settings": ws,
	})
}
