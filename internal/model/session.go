package model

import "time"

// Session status values.  A session starts active, becomes completed when
// the client finalizes their selection, and may be archived manually by
// the photographer.  Archived is terminal.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionArchived  = "archived"
)

// sessionTransitions is the allowed status transition table for sessions.
// Any transition not listed here is rejected.
var sessionTransitions = map[string][]string{
	SessionActive:    {SessionCompleted, SessionArchived},
	SessionCompleted: {SessionArchived},
	SessionArchived:  {},
}

// SessionCanTransition reports whether a session may move from one status
// to another according to the transition table.
func SessionCanTransition(from, to string) bool {
	for _, next := range sessionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SessionSettings controls what a client may do inside the public gallery.
// Nil limits mean the category is uncapped.
//
// Fields:
//  AllowAlbumSelection   – whether album selection is offered at all.
//  AllowEditingSelection – whether editing selection is offered at all.
//  MaxAlbumSelections    – cap on photos flagged for the album (nil = none).
//  MaxEditingSelections  – cap on photos flagged for editing (nil = none).
type SessionSettings struct {
	AllowAlbumSelection   bool   `json:"allow_album_selection"`
	AllowEditingSelection bool   `json:"allow_editing_selection"`
	MaxAlbumSelections    *int   `json:"max_album_selections"`
	MaxEditingSelections  *int   `json:"max_editing_selections"`
}

// Session represents a photography session a photographer shares with a
// client.  Clients reach the session exclusively through its access code,
// a unique 6-character token generated at creation time and never
// reassigned.
//
// Fields:
//  ID             – primary identifier.
//  PhotographerID – owning photographer.
//  Name           – display name of the session.
//  Description    – free text shown to the client.
//  ClientName     – client's display name.
//  ClientEmail    – client's email address.
//  SessionDate    – when the shoot took place / is scheduled.
//  AccessCode     – unique upper-case public lookup key.
//  Status         – active, completed or archived.
//  Settings       – selection policy for the public gallery.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Session struct {
	ID             uint64          `json:"id"`
	PhotographerID uint64          `json:"photographer_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	ClientName     string          `json:"client_name"`
	ClientEmail    string          `json:"client_email"`
	SessionDate    time.Time       `json:"session_date"`
	AccessCode     string          `json:"access_code"`
	Status         string          `json:"status"`
	Settings       SessionSettings `json:"settings"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Public returns the client-facing view of the session.  The photographer
// id is withheld; everything else is safe to show behind the access code.
func (s *Session) Public() map[string]any {
	return map[string]any{
		"id":           s.ID,
		"name":         s.Name,
		"description":  s.Description,
		"client_name":  s.ClientName,
		"session_date": s.SessionDate,
		"status":       s.Status,
		"settings":     s.Settings,
	}
}
