// This file defines the photographer-facing gallery API: session CRUD,
// photo uploads, selection statistics and the Lightroom filter exports.
// All routes here sit behind JWT auth; clients use the public gallery
// handlers instead.

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/photoflow/photoflow/internal/lightroom"
	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/repository"
)

// GalleryHandler bundles the repositories behind the owner gallery routes.
type GalleryHandler struct {
	Sessions *repository.SessionRepo
	Photos   *repository.PhotoRepo
	Orders   *repository.OrderRepo
}

func NewGalleryHandler(sessions *repository.SessionRepo, photos *repository.PhotoRepo, orders *repository.OrderRepo) *GalleryHandler {
	if sessions == nil || photos == nil || orders == nil {
		panic("nil repository passed to NewGalleryHandler")
	}
	return &GalleryHandler{Sessions: sessions, Photos: photos, Orders: orders}
}

// ----- DTOs -----

type createSessionReq struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	ClientName  string                 `json:"client_name"`
	ClientEmail string                 `json:"client_email"`
	SessionDate time.Time              `json:"session_date"`
	Settings    *model.SessionSettings `json:"settings"`
}

type uploadPhotosReq struct {
	Photos []repository.PhotoUpload `json:"photos"`
}

type sessionStatusReq struct {
	Status string `json:"status"`
}

// Dashboard summarizes the photographer's sessions: counts per status and
// selection progress for the active ones.
func (h *GalleryHandler) Dashboard(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	sessions := h.Sessions.ListByPhotographer(uid)

	openOrders := 0
	for _, o := range h.Orders.ListByPhotographer(uid, "", 0) {
		if o.Status != model.OrderCompleted && o.Status != model.OrderCancelled {
			openOrders++
		}
	}

	byStatus := map[string]int{}
	recent := make([]echo.Map, 0, len(sessions))
	for _, s := range sessions {
		byStatus[s.Status]++
		stats := h.Photos.Stats(s.ID)
		recent = append(recent, echo.Map{
			"id":           s.ID,
			"name":         s.Name,
			"client_name":  s.ClientName,
			"access_code":  s.AccessCode,
			"status":       s.Status,
			"session_date": s.SessionDate,
			"stats":        stats,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total_sessions": len(sessions),
		"by_status":      byStatus,
		"open_orders":    openOrders,
		"sessions":       recent,
	})
}

// CreateSession creates a session with a fresh unique access code.
func (h *GalleryHandler) CreateSession(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	var req createSessionReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.ClientName = strings.TrimSpace(req.ClientName)
	if req.Name == "" || req.ClientName == "" {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "name and client_name required")
	}
	if req.SessionDate.IsZero() {
		req.SessionDate = time.Now().UTC()
	}
	settings := model.SessionSettings{AllowAlbumSelection: true, AllowEditingSelection: true}
	if req.Settings != nil {
		settings = *req.Settings
	}

	session, err := h.Sessions.Create(uid, req.Name, req.Description, req.ClientName, req.ClientEmail, req.SessionDate, settings)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, repository.CodeInternalError, "create session failed")
	}
	return c.JSON(http.StatusCreated, session)
}

// ListSessions returns every session of the photographer, newest last.
func (h *GalleryHandler) ListSessions(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	sessions := h.Sessions.ListByPhotographer(uid)
	if status := c.QueryParam("status"); status != "" {
		filtered := sessions[:0]
		for _, s := range sessions {
			if s.Status == status {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}
	return c.JSON(http.StatusOK, echo.Map{"items": sessions})
}

// GetSession returns one session with its photos and statistics.
func (h *GalleryHandler) GetSession(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid id")
	}
	session, err := h.Sessions.GetByIDForPhotographer(id, uid)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"session": session,
		"photos":  h.Photos.FindBySession(session.ID),
		"stats":   h.Photos.Stats(session.ID),
	})
}

// UpdateSessionStatus moves a session through active → completed →
// archived.  Transitions outside the table are rejected with 409.
func (h *GalleryHandler) UpdateSessionStatus(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid id")
	}
	var req sessionStatusReq
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "status required")
	}
	session, err := h.Sessions.GetByIDForPhotographer(id, uid)
	if err != nil {
		return domainError(c, err)
	}
	if err := h.Sessions.SetStatus(session.ID, req.Status); err != nil {
		return domainError(c, err)
	}
	session, err = h.Sessions.GetByID(session.ID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// UploadPhotos registers a batch of uploaded files against a session.
// The upload pipeline stores files before this call; here only metadata
// rows are created.
func (h *GalleryHandler) UploadPhotos(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid id")
	}
	var req uploadPhotosReq
	if err := c.Bind(&req); err != nil || len(req.Photos) == 0 {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "photos required")
	}
	for _, p := range req.Photos {
		if strings.TrimSpace(p.Filename) == "" {
			return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "every photo needs a filename")
		}
	}
	session, err := h.Sessions.GetByIDForPhotographer(id, uid)
	if err != nil {
		return domainError(c, err)
	}
	created := h.Photos.CreateBatch(session.ID, uid, req.Photos)
	return c.JSON(http.StatusCreated, echo.Map{
		"uploaded": len(created),
		"photos":   created,
	})
}

// SessionStats returns the selection statistics for one session.
func (h *GalleryHandler) SessionStats(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid id")
	}
	session, err := h.Sessions.GetByIDForPhotographer(id, uid)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"session_id": session.ID,
		"status":     session.Status,
		"stats":      h.Photos.Stats(session.ID),
	})
}

// SessionFilters builds the per-category Lightroom filename filters from
// the session's current selection state.
func (h *GalleryHandler) SessionFilters(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid id")
	}
	session, err := h.Sessions.GetByIDForPhotographer(id, uid)
	if err != nil {
		return domainError(c, err)
	}
	filters := lightroom.Generate(h.Photos.FindBySession(session.ID))
	return c.JSON(http.StatusOK, echo.Map{
		"session_id": session.ID,
		"names":      filters,
		"filters":    filters.Render(),
	})
}

// ExportFilters renders the filters plus the workflow instructions as a
// plain text document the photographer can save next to the RAW files.
func (h *GalleryHandler) ExportFilters(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid id")
	}
	session, err := h.Sessions.GetByIDForPhotographer(id, uid)
	if err != nil {
		return domainError(c, err)
	}
	filters := lightroom.Generate(h.Photos.FindBySession(session.ID)).Render()

	var b strings.Builder
	b.WriteString("PhotoFlow – Lightroom selection filters\n")
	b.WriteString("Session: " + session.Name + " (" + session.AccessCode + ")\n")
	b.WriteString("Client:  " + session.ClientName + "\n\n")
	for _, line := range lightroom.Instructions {
		b.WriteString(line + "\n")
	}
	b.WriteString("\nAll selected:\n" + filters.AllSelectedFilter + "\n")
	b.WriteString("\nAlbum:\n" + filters.AlbumFilter + "\n")
	b.WriteString("\nEditing:\n" + filters.EditingFilter + "\n")
	b.WriteString("\nClient picks:\n" + filters.ClientFilter + "\n")

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="lightroom-filters.txt"`)
	return c.String(http.StatusOK, b.String())
}
