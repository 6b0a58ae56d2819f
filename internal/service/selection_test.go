package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/queue"
	"github.com/photoflow/photoflow/internal/repository"
)

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

// newGallery builds a session with the given settings and a batch of
// photos named DSC_0001.NEF .. DSC_000n.NEF.
func newGallery(t *testing.T, settings model.SessionSettings, photoCount int) (*SelectionService, *model.Session, []*model.Photo) {
	t.Helper()
	sessions := repository.NewSessionRepo()
	photos := repository.NewPhotoRepo()

	session, err := sessions.Create(1, "Wedding", "", "Ana", "ana@example.com", time.Now(), settings)
	require.NoError(t, err)

	uploads := make([]repository.PhotoUpload, 0, photoCount)
	for i := 1; i <= photoCount; i++ {
		name := "DSC_000" + string(rune('0'+i))
		uploads = append(uploads, repository.PhotoUpload{
			Filename:         name + ".jpg",
			OriginalFilename: name + ".NEF",
		})
	}
	created := photos.CreateBatch(session.ID, 1, uploads)
	return NewSelectionService(sessions, photos), session, created
}

func openSettings() model.SessionSettings {
	return model.SessionSettings{AllowAlbumSelection: true, AllowEditingSelection: true}
}

func TestUpdateSelectionSetsFlagAndStats(t *testing.T) {
	svc, session, photos := newGallery(t, openSettings(), 3)

	photo, stats, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID:  photos[0].ID,
		Category: model.SelectionGeneral,
		Selected: true,
	})
	require.NoError(t, err)
	assert.True(t, photo.SelectedByClient)
	assert.Equal(t, 3, stats.TotalPhotos)
	assert.Equal(t, 1, stats.SelectedByClient)
	assert.Equal(t, 1, stats.SelectedAny)
	assert.Equal(t, 2, stats.Pending)
}

func TestUpdateSelectionStoresClientNotes(t *testing.T) {
	svc, session, photos := newGallery(t, openSettings(), 1)

	photo, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID:     photos[0].ID,
		Category:    model.SelectionEditing,
		Selected:    true,
		ClientNotes: strPtr("remove the lamp post"),
	})
	require.NoError(t, err)
	assert.Equal(t, "remove the lamp post", photo.ClientNotes)
}

func TestSelectionLimitEnforced(t *testing.T) {
	settings := openSettings()
	settings.MaxAlbumSelections = intPtr(2)
	svc, session, photos := newGallery(t, settings, 4)

	for i := 0; i < 2; i++ {
		_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
			PhotoID: photos[i].ID, Category: model.SelectionAlbum, Selected: true,
		})
		require.NoError(t, err)
	}

	_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID: photos[2].ID, Category: model.SelectionAlbum, Selected: true,
	})
	var limitErr *repository.SelectionLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, model.SelectionAlbum, limitErr.Category)
	assert.Equal(t, 2, limitErr.Limit)
}

func TestReselectingAtTheLimitIsIdempotent(t *testing.T) {
	settings := openSettings()
	settings.MaxAlbumSelections = intPtr(1)
	svc, session, photos := newGallery(t, settings, 2)

	_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID: photos[0].ID, Category: model.SelectionAlbum, Selected: true,
	})
	require.NoError(t, err)

	// The already-selected photo does not count against itself.
	_, _, err = svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID: photos[0].ID, Category: model.SelectionAlbum, Selected: true,
	})
	assert.NoError(t, err)
}

func TestDeselectingNeverChecksTheLimit(t *testing.T) {
	settings := openSettings()
	settings.MaxAlbumSelections = intPtr(1)
	svc, session, photos := newGallery(t, settings, 2)

	_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID: photos[0].ID, Category: model.SelectionAlbum, Selected: true,
	})
	require.NoError(t, err)

	_, stats, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID: photos[0].ID, Category: model.SelectionAlbum, Selected: false,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.SelectedForAlbum)
}

func TestGeneralCategoryHasNoCap(t *testing.T) {
	settings := openSettings()
	settings.MaxAlbumSelections = intPtr(1)
	settings.MaxEditingSelections = intPtr(1)
	svc, session, photos := newGallery(t, settings, 4)

	for _, p := range photos {
		_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
			PhotoID: p.ID, Category: model.SelectionGeneral, Selected: true,
		})
		require.NoError(t, err)
	}
}

func TestUpdateSelectionRejectsUnknownCategory(t *testing.T) {
	svc, session, photos := newGallery(t, openSettings(), 1)

	_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID: photos[0].ID, Category: "favorites", Selected: true,
	})
	assert.ErrorIs(t, err, repository.ErrInvalidCategory)
}

func TestUpdateSelectionRejectsForeignPhoto(t *testing.T) {
	svc, session, _ := newGallery(t, openSettings(), 1)

	_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID: 999, Category: model.SelectionGeneral, Selected: true,
	})
	assert.ErrorIs(t, err, repository.ErrPhotoNotFound)
}

func TestFinalizeWithoutSelectionKeepsSessionActive(t *testing.T) {
	svc, session, _ := newGallery(t, openSettings(), 2)

	_, err := svc.Finalize(context.Background(), session.AccessCode)
	require.ErrorIs(t, err, repository.ErrNoSelection)

	stored, err := svc.Sessions.GetByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionActive, stored.Status)
}

func TestFinalizeCompletesSessionAndBuildsFilter(t *testing.T) {
	svc, session, photos := newGallery(t, openSettings(), 3)

	var published *queue.SelectionFinalizedEvent
	svc.PublishFinalized = func(ctx context.Context, ev queue.SelectionFinalizedEvent) error {
		published = &ev
		return nil
	}

	for _, p := range photos[:2] {
		_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
			PhotoID: p.ID, Category: model.SelectionAlbum, Selected: true,
		})
		require.NoError(t, err)
	}

	result, err := svc.Finalize(context.Background(), session.AccessCode)
	require.NoError(t, err)

	assert.Equal(t, model.SessionCompleted, result.Session.Status)
	stored, err := svc.Sessions.GetByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionCompleted, stored.Status)
	assert.Equal(t, 2, result.SelectedCount)
	assert.Equal(t, 3, result.TotalPhotos)
	assert.Equal(t, "DSC_0001 OR DSC_0002", result.LightroomFilter)
	assert.True(t, strings.HasPrefix(result.FilterCode, "PHOTOFLOW_"+session.AccessCode+"_"))

	require.NotNil(t, published)
	assert.Equal(t, session.ID, published.SessionID)
	assert.Equal(t, result.LightroomFilter, published.LightroomFilter)
	assert.Equal(t, result.FilterCode, published.FilterCode)
}

func TestFinalizeTwiceFails(t *testing.T) {
	svc, session, photos := newGallery(t, openSettings(), 1)

	_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID: photos[0].ID, Category: model.SelectionGeneral, Selected: true,
	})
	require.NoError(t, err)
	_, err = svc.Finalize(context.Background(), session.AccessCode)
	require.NoError(t, err)

	_, err = svc.Finalize(context.Background(), session.AccessCode)
	assert.ErrorIs(t, err, repository.ErrSessionNotActive)
}

func TestSelectionRejectedAfterFinalize(t *testing.T) {
	svc, session, photos := newGallery(t, openSettings(), 2)

	_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID: photos[0].ID, Category: model.SelectionGeneral, Selected: true,
	})
	require.NoError(t, err)
	_, err = svc.Finalize(context.Background(), session.AccessCode)
	require.NoError(t, err)

	_, _, err = svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID: photos[1].ID, Category: model.SelectionGeneral, Selected: true,
	})
	assert.ErrorIs(t, err, repository.ErrSessionNotActive)
}

func TestResetClearsFlagsAndNotes(t *testing.T) {
	svc, session, photos := newGallery(t, openSettings(), 3)

	_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID:     photos[0].ID,
		Category:    model.SelectionAlbum,
		Selected:    true,
		ClientNotes: strPtr("crop tighter"),
	})
	require.NoError(t, err)

	cleared, err := svc.ResetSelections(session.AccessCode)
	require.NoError(t, err)
	assert.Equal(t, 3, cleared)

	stats := svc.Photos.Stats(session.ID)
	assert.Equal(t, 0, stats.SelectedAny)
	assert.Equal(t, 3, stats.Pending)

	first, err := svc.Photos.GetByID(photos[0].ID)
	require.NoError(t, err)
	assert.Empty(t, first.ClientNotes)
}

func TestFinalizePublishesWithoutHoldingTheServiceMutex(t *testing.T) {
	svc, session, photos := newGallery(t, openSettings(), 1)

	// a publisher that dials a broker must never run under the mutex;
	// that would stall selection traffic on every other session
	published := false
	svc.PublishFinalized = func(ctx context.Context, ev queue.SelectionFinalizedEvent) error {
		published = true
		free := svc.mu.TryLock()
		if free {
			svc.mu.Unlock()
		}
		assert.True(t, free, "publish ran while the service mutex was held")
		return nil
	}

	_, _, err := svc.UpdateSelection(session.AccessCode, SelectionRequest{
		PhotoID: photos[0].ID, Category: model.SelectionGeneral, Selected: true,
	})
	require.NoError(t, err)
	_, err = svc.Finalize(context.Background(), session.AccessCode)
	require.NoError(t, err)
	assert.True(t, published)
}
