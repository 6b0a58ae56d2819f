// Package service implements the domain flows on top of the repositories:
// client photo selection with limit enforcement, finalize with Lightroom
// filter generation, and the commerce order/payment flow.  The services
// serialize their check-then-write sequences behind a mutex, which is the
// mutual-exclusion boundary the in-memory store needs under a concurrent
// HTTP server.
package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/photoflow/photoflow/internal/lightroom"
	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/queue"
	"github.com/photoflow/photoflow/internal/repository"
)

// SelectionService coordinates sessions and photos for the client-facing
// selection flow.
type SelectionService struct {
	mu       sync.Mutex
	Sessions *repository.SessionRepo
	Photos   *repository.PhotoRepo
	// PublishFinalized is called after a successful finalize.  Wired to
	// the RabbitMQ publisher in production and left nil in tests.
	PublishFinalized func(ctx context.Context, ev queue.SelectionFinalizedEvent) error
}

// NewSelectionService returns a SelectionService over the given repos.
func NewSelectionService(sessions *repository.SessionRepo, photos *repository.PhotoRepo) *SelectionService {
	return &SelectionService{Sessions: sessions, Photos: photos}
}

// SelectionRequest is one client selection action from the gallery.
type SelectionRequest struct {
	PhotoID     uint64
	Category    string // album | editing | general
	Selected    bool
	ClientNotes *string // nil leaves existing notes untouched
}

// UpdateSelection applies one selection action for the session resolved
// by access code.  Turning a flag on for a capped category counts the
// other photos already carrying that flag; the photo being updated is
// excluded so re-selecting it is always a no-op rather than a limit hit.
// Unsetting a flag never checks the limit, and the general category has
// no cap.  The whole check-then-write runs under the service mutex.
func (s *SelectionService) UpdateSelection(accessCode string, req SelectionRequest) (*model.Photo, model.SessionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.Sessions.FindByAccessCode(accessCode)
	if err != nil {
		return nil, model.SessionStats{}, err
	}
	if session.Status != model.SessionActive {
		return nil, model.SessionStats{}, repository.ErrSessionNotActive
	}
	photo, err := s.Photos.GetByID(req.PhotoID)
	if err != nil || photo.SessionID != session.ID {
		return nil, model.SessionStats{}, repository.ErrPhotoNotFound
	}

	if req.Selected {
		if limit := categoryLimit(session.Settings, req.Category); limit != nil {
			current := s.Photos.CountSelected(session.ID, req.Category, photo.ID)
			if current >= *limit {
				return nil, model.SessionStats{}, &repository.SelectionLimitError{Category: req.Category, Limit: *limit}
			}
		}
	}

	change := repository.SelectionChange{Notes: req.ClientNotes}
	flag := req.Selected
	switch req.Category {
	case model.SelectionAlbum:
		change.ForAlbum = &flag
	case model.SelectionEditing:
		change.ForEditing = &flag
	case model.SelectionGeneral:
		change.ByClient = &flag
	default:
		return nil, model.SessionStats{}, repository.ErrInvalidCategory
	}
	if err := s.Photos.ApplySelection(photo.ID, change); err != nil {
		return nil, model.SessionStats{}, err
	}
	updated, err := s.Photos.GetByID(photo.ID)
	if err != nil {
		return nil, model.SessionStats{}, err
	}
	return updated, s.Photos.Stats(session.ID), nil
}

// categoryLimit returns the configured cap for a capped category, or nil
// when the category is uncapped.
func categoryLimit(settings model.SessionSettings, category string) *int {
	switch category {
	case model.SelectionAlbum:
		return settings.MaxAlbumSelections
	case model.SelectionEditing:
		return settings.MaxEditingSelections
	}
	return nil
}

// ResetSelections clears every selection flag and note in the session.
// Completed and archived sessions refuse the reset.
func (s *SelectionService) ResetSelections(accessCode string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.Sessions.FindByAccessCode(accessCode)
	if err != nil {
		return 0, err
	}
	if session.Status != model.SessionActive {
		return 0, repository.ErrSessionNotActive
	}
	photos := s.Photos.FindBySession(session.ID)
	off := false
	empty := ""
	for _, p := range photos {
		_ = s.Photos.ApplySelection(p.ID, repository.SelectionChange{
			ByClient:   &off,
			ForAlbum:   &off,
			ForEditing: &off,
			Notes:      &empty,
		})
	}
	return len(photos), nil
}

// FinalizeResult is the outcome of a successful finalize call.
type FinalizeResult struct {
	FilterCode      string
	SelectedCount   int
	TotalPhotos     int
	LightroomFilter string
	Session         *model.Session
}

// Finalize freezes the session's selection.  It fails with ErrNoSelection
// when no photo carries any flag (leaving the session active) and with
// ErrSessionNotActive when the session was already finalized or archived.
// On success the session becomes completed, the union filter string is
// generated from the photos in upload order, and a finalized event is
// published.  The publish happens after the mutex is released; a slow
// broker must not stall selection traffic on other sessions.
func (s *SelectionService) Finalize(ctx context.Context, accessCode string) (*FinalizeResult, error) {
	result, ev, err := s.finalize(accessCode)
	if err != nil {
		return nil, err
	}
	if s.PublishFinalized != nil {
		if err := s.PublishFinalized(ctx, ev); err != nil {
			log.Printf("selection: publish finalized event failed: %v", err)
		}
	}
	return result, nil
}

// finalize runs the state transition under the service mutex and returns
// the result together with the event to publish.
func (s *SelectionService) finalize(accessCode string) (*FinalizeResult, queue.SelectionFinalizedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.Sessions.FindByAccessCode(accessCode)
	if err != nil {
		return nil, queue.SelectionFinalizedEvent{}, err
	}
	if session.Status != model.SessionActive {
		return nil, queue.SelectionFinalizedEvent{}, repository.ErrSessionNotActive
	}
	selected := s.Photos.FindSelected(session.ID, "all")
	if len(selected) == 0 {
		return nil, queue.SelectionFinalizedEvent{}, repository.ErrNoSelection
	}

	filters := lightroom.Generate(s.Photos.FindBySession(session.ID))
	filter := lightroom.Join(filters.All)
	code := lightroom.FilterCode(session.AccessCode, time.Now().UTC())

	if err := s.Sessions.SetStatus(session.ID, model.SessionCompleted); err != nil {
		return nil, queue.SelectionFinalizedEvent{}, err
	}
	session, err = s.Sessions.GetByID(session.ID)
	if err != nil {
		return nil, queue.SelectionFinalizedEvent{}, err
	}

	total := len(s.Photos.FindBySession(session.ID))
	ev := queue.SelectionFinalizedEvent{
		SessionID:       session.ID,
		PhotographerID:  session.PhotographerID,
		AccessCode:      session.AccessCode,
		SessionName:     session.Name,
		ClientName:      session.ClientName,
		FilterCode:      code,
		LightroomFilter: filter,
		SelectedCount:   len(selected),
		TotalPhotos:     total,
		FinalizedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	return &FinalizeResult{
		FilterCode:      code,
		SelectedCount:   len(selected),
		TotalPhotos:     total,
		LightroomFilter: filter,
		Session:         session,
	}, ev, nil
}
