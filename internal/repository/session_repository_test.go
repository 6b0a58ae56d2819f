package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoflow/photoflow/internal/model"
)

func newSession(t *testing.T, r *SessionRepo, photographerID uint64) *model.Session {
	t.Helper()
	s, err := r.Create(photographerID, "Wedding", "", "Ana", "ana@example.com", time.Now(), model.SessionSettings{})
	require.NoError(t, err)
	return s
}

func TestCreateAssignsAccessCode(t *testing.T) {
	r := NewSessionRepo()
	s := newSession(t, r, 1)

	assert.Len(t, s.AccessCode, 6)
	assert.Equal(t, strings.ToUpper(s.AccessCode), s.AccessCode)
	assert.Equal(t, model.SessionActive, s.Status)
}

func TestAccessCodesAreUnique(t *testing.T) {
	r := NewSessionRepo()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s := newSession(t, r, 1)
		assert.False(t, seen[s.AccessCode], "duplicate code %s", s.AccessCode)
		seen[s.AccessCode] = true
	}
}

func TestFindByAccessCodeIsCaseInsensitive(t *testing.T) {
	r := NewSessionRepo()
	s := newSession(t, r, 1)

	got, err := r.FindByAccessCode(strings.ToLower(s.AccessCode))
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
}

func TestFindByAccessCodeUnknownCode(t *testing.T) {
	r := NewSessionRepo()
	_, err := r.FindByAccessCode("NOPE99")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCompletedSessionStaysResolvable(t *testing.T) {
	r := NewSessionRepo()
	s := newSession(t, r, 1)
	require.NoError(t, r.SetStatus(s.ID, model.SessionCompleted))

	got, err := r.FindByAccessCode(s.AccessCode)
	require.NoError(t, err)
	assert.Equal(t, model.SessionCompleted, got.Status)
}

func TestArchivedSessionIsWithheldFromAccessCodeLookup(t *testing.T) {
	r := NewSessionRepo()
	s := newSession(t, r, 1)
	require.NoError(t, r.SetStatus(s.ID, model.SessionArchived))

	_, err := r.FindByAccessCode(s.AccessCode)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// the photographer still reaches it by id
	got, err := r.GetByIDForPhotographer(s.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, model.SessionArchived, got.Status)
}

func TestSetStatusRejectsInvalidTransitions(t *testing.T) {
	r := NewSessionRepo()
	s := newSession(t, r, 1)

	require.NoError(t, r.SetStatus(s.ID, model.SessionCompleted))
	// completed cannot reopen
	assert.ErrorIs(t, r.SetStatus(s.ID, model.SessionActive), ErrInvalidTransition)

	require.NoError(t, r.SetStatus(s.ID, model.SessionArchived))
	// archived is terminal
	assert.ErrorIs(t, r.SetStatus(s.ID, model.SessionCompleted), ErrInvalidTransition)
}

func TestGetByIDForPhotographerChecksOwnership(t *testing.T) {
	r := NewSessionRepo()
	s := newSession(t, r, 1)

	_, err := r.GetByIDForPhotographer(s.ID, 2)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = r.GetByIDForPhotographer(999, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestListByPhotographerFilters(t *testing.T) {
	r := NewSessionRepo()
	newSession(t, r, 1)
	newSession(t, r, 1)
	newSession(t, r, 2)

	assert.Len(t, r.ListByPhotographer(1), 2)
	assert.Len(t, r.ListByPhotographer(2), 1)
	assert.Empty(t, r.ListByPhotographer(3))
}
