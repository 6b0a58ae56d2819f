package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoflow/photoflow/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func seedPhotos(t *testing.T, r *PhotoRepo, sessionID uint64, n int) []*model.Photo {
	t.Helper()
	uploads := make([]PhotoUpload, 0, n)
	for i := 0; i < n; i++ {
		name := string(rune('a' + i))
		uploads = append(uploads, PhotoUpload{
			Filename:         name + ".jpg",
			OriginalFilename: name + ".NEF",
		})
	}
	created := r.CreateBatch(sessionID, 1, uploads)
	require.Len(t, created, n)
	return created
}

func TestCreateBatchDerivesPaths(t *testing.T) {
	r := NewPhotoRepo()
	photos := r.CreateBatch(7, 1, []PhotoUpload{
		{Filename: "a.jpg", OriginalFilename: "a.NEF"},
		{Filename: "b.jpg", FilePath: "/custom/b.jpg", ThumbnailPath: "/custom/t/b.jpg"},
	})

	assert.Equal(t, "/uploads/7/a.jpg", photos[0].FilePath)
	assert.Equal(t, "/thumbnails/7/a.jpg", photos[0].ThumbnailPath)
	assert.NotNil(t, photos[0].Metadata)

	// explicit paths win
	assert.Equal(t, "/custom/b.jpg", photos[1].FilePath)
	assert.Equal(t, "/custom/t/b.jpg", photos[1].ThumbnailPath)
}

func TestApplySelectionOnlyTouchesGivenFields(t *testing.T) {
	r := NewPhotoRepo()
	photos := seedPhotos(t, r, 1, 1)
	id := photos[0].ID

	require.NoError(t, r.ApplySelection(id, SelectionChange{ForAlbum: boolPtr(true)}))
	p, err := r.GetByID(id)
	require.NoError(t, err)
	assert.True(t, p.SelectedForAlbum)
	assert.False(t, p.SelectedByClient)
	assert.False(t, p.SelectedForEditing)

	note := "retouch skin"
	require.NoError(t, r.ApplySelection(id, SelectionChange{Notes: &note}))
	p, err = r.GetByID(id)
	require.NoError(t, err)
	assert.True(t, p.SelectedForAlbum, "notes update must not clear flags")
	assert.Equal(t, "retouch skin", p.ClientNotes)

	assert.ErrorIs(t, r.ApplySelection(999, SelectionChange{}), ErrPhotoNotFound)
}

func TestStatsDuringConcurrentSelectionWrites(t *testing.T) {
	r := NewPhotoRepo()
	photos := seedPhotos(t, r, 1, 10)

	// exercised under -race: Stats reads flags while ApplySelection
	// writes them
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for n := 0; n < 200; n++ {
			flag := n%2 == 0
			_ = r.ApplySelection(photos[n%10].ID, SelectionChange{ForAlbum: &flag})
		}
	}()
	go func() {
		defer wg.Done()
		for n := 0; n < 200; n++ {
			stats := r.Stats(1)
			assert.Equal(t, stats.TotalPhotos, stats.SelectedAny+stats.Pending)
		}
	}()
	wg.Wait()
}

func TestCountSelectedExcludesGivenPhoto(t *testing.T) {
	r := NewPhotoRepo()
	photos := seedPhotos(t, r, 1, 3)

	for _, p := range photos[:2] {
		require.NoError(t, r.ApplySelection(p.ID, SelectionChange{ForAlbum: boolPtr(true)}))
	}

	assert.Equal(t, 2, r.CountSelected(1, model.SelectionAlbum, 0))
	// the photo being re-selected does not count against itself
	assert.Equal(t, 1, r.CountSelected(1, model.SelectionAlbum, photos[0].ID))
}

func TestFindSelectedAllIsTheUnion(t *testing.T) {
	r := NewPhotoRepo()
	photos := seedPhotos(t, r, 1, 4)

	require.NoError(t, r.ApplySelection(photos[0].ID, SelectionChange{ForAlbum: boolPtr(true)}))
	require.NoError(t, r.ApplySelection(photos[1].ID, SelectionChange{ForEditing: boolPtr(true)}))
	require.NoError(t, r.ApplySelection(photos[2].ID, SelectionChange{ForAlbum: boolPtr(true), ByClient: boolPtr(true)}))

	assert.Len(t, r.FindSelected(1, model.SelectionAlbum), 2)
	assert.Len(t, r.FindSelected(1, model.SelectionEditing), 1)
	assert.Len(t, r.FindSelected(1, model.SelectionGeneral), 1)
	// union counts each photo once
	assert.Len(t, r.FindSelected(1, "all"), 3)
}

func TestStatsPendingIsTheComplement(t *testing.T) {
	r := NewPhotoRepo()
	photos := seedPhotos(t, r, 1, 5)

	require.NoError(t, r.ApplySelection(photos[0].ID, SelectionChange{ForAlbum: boolPtr(true)}))
	require.NoError(t, r.ApplySelection(photos[1].ID, SelectionChange{ForAlbum: boolPtr(true), ForEditing: boolPtr(true)}))

	stats := r.Stats(1)
	assert.Equal(t, 5, stats.TotalPhotos)
	assert.Equal(t, 2, stats.SelectedForAlbum)
	assert.Equal(t, 1, stats.SelectedForEditing)
	assert.Equal(t, 0, stats.SelectedByClient)
	assert.Equal(t, 2, stats.SelectedAny)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, stats.TotalPhotos, stats.SelectedAny+stats.Pending)
}
