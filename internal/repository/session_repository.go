package repository

import (
	"strings"
	"time"

	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/store"
	"github.com/photoflow/photoflow/internal/utils"
)

// SessionRepo provides access to photography sessions.  Sessions live in
// an in-memory ordered collection; the access code is generated here at
// creation time and never reassigned afterwards.
type SessionRepo struct {
	sessions *store.Collection[model.Session]
}

// NewSessionRepo returns a SessionRepo over a fresh collection.
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: store.NewCollection[model.Session]()}
}

// Create stores a new active session for the photographer.  The access
// code is drawn from the code generator and retried until unique across
// all sessions, which keeps the code usable as the sole public key.
func (r *SessionRepo) Create(photographerID uint64, name, description, clientName, clientEmail string, sessionDate time.Time, settings model.SessionSettings) (*model.Session, error) {
	var code string
	for {
		candidate, err := utils.NewAccessCode()
		if err != nil {
			return nil, err
		}
		if _, exists := r.sessions.First(func(s *model.Session) bool { return s.AccessCode == candidate }); !exists {
			code = candidate
			break
		}
	}
	now := time.Now().UTC()
	session := r.sessions.Insert(func(id uint64) *model.Session {
		return &model.Session{
			ID:             id,
			PhotographerID: photographerID,
			Name:           name,
			Description:    description,
			ClientName:     clientName,
			ClientEmail:    clientEmail,
			SessionDate:    sessionDate,
			AccessCode:     code,
			Status:         model.SessionActive,
			Settings:       settings,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	})
	return session, nil
}

// GetByID returns the session with the given id.
func (r *SessionRepo) GetByID(id uint64) (*model.Session, error) {
	session, ok := r.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// GetByIDForPhotographer returns the session when it exists and belongs
// to the photographer; ErrForbidden distinguishes ownership failures.
func (r *SessionRepo) GetByIDForPhotographer(id, photographerID uint64) (*model.Session, error) {
	session, ok := r.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.PhotographerID != photographerID {
		return nil, ErrForbidden
	}
	return session, nil
}

// FindByAccessCode resolves the public lookup key.  Matching is
// case-insensitive.  Active and completed sessions resolve (completed is
// read-only history for the client); archived sessions are withheld from
// the public surface entirely.
func (r *SessionRepo) FindByAccessCode(code string) (*model.Session, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	session, ok := r.sessions.First(func(s *model.Session) bool { return s.AccessCode == code })
	if !ok || session.Status == model.SessionArchived {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// ListByPhotographer returns the photographer's sessions in creation
// order.
func (r *SessionRepo) ListByPhotographer(photographerID uint64) []*model.Session {
	return r.sessions.Find(func(s *model.Session) bool { return s.PhotographerID == photographerID })
}

// SetStatus transitions a session through its status table.  Transitions
// not present in the table fail with ErrInvalidTransition.  The check
// and the write happen inside one Update call so concurrent transitions
// cannot both pass the table check.
func (r *SessionRepo) SetStatus(id uint64, to string) error {
	err := ErrSessionNotFound
	r.sessions.Update(id, func(s *model.Session) {
		if !model.SessionCanTransition(s.Status, to) {
			err = ErrInvalidTransition
			return
		}
		s.Status = to
		s.UpdatedAt = time.Now().UTC()
		err = nil
	})
	return err
}
