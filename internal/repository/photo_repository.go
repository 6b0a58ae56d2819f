package repository

import (
	"fmt"
	"time"

	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/store"
)

// PhotoRepo provides access to uploaded photos.  Photos keep their upload
// order inside the collection, which is what makes the generated filter
// strings deterministic.
type PhotoRepo struct {
	photos *store.Collection[model.Photo]
}

// NewPhotoRepo returns a PhotoRepo over a fresh collection.
func NewPhotoRepo() *PhotoRepo {
	return &PhotoRepo{photos: store.NewCollection[model.Photo]()}
}

// PhotoUpload carries the caller-supplied fields for one uploaded file.
// Paths are optional; missing ones are derived from the session id and
// filename the same way the upload pipeline would lay them out.
type PhotoUpload struct {
	Filename         string         `json:"filename"`
	OriginalFilename string         `json:"original_filename"`
	FilePath         string         `json:"file_path"`
	ThumbnailPath    string         `json:"thumbnail_path"`
	FileSize         int64          `json:"file_size"`
	Width            int            `json:"width"`
	Height           int            `json:"height"`
	Metadata         map[string]any `json:"metadata"`
}

// CreateBatch stores one photo row per upload.  The caller must already
// have verified that the session belongs to the photographer.
func (r *PhotoRepo) CreateBatch(sessionID, photographerID uint64, uploads []PhotoUpload) []*model.Photo {
	now := time.Now().UTC()
	created := make([]*model.Photo, 0, len(uploads))
	for _, u := range uploads {
		filePath := u.FilePath
		if filePath == "" {
			filePath = fmt.Sprintf("/uploads/%d/%s", sessionID, u.Filename)
		}
		thumbPath := u.ThumbnailPath
		if thumbPath == "" {
			thumbPath = fmt.Sprintf("/thumbnails/%d/%s", sessionID, u.Filename)
		}
		metadata := u.Metadata
		if metadata == nil {
			metadata = map[string]any{}
		}
		photo := r.photos.Insert(func(id uint64) *model.Photo {
			return &model.Photo{
				ID:               id,
				SessionID:        sessionID,
				PhotographerID:   photographerID,
				Filename:         u.Filename,
				OriginalFilename: u.OriginalFilename,
				FilePath:         filePath,
				ThumbnailPath:    thumbPath,
				FileSize:         u.FileSize,
				Width:            u.Width,
				Height:           u.Height,
				Metadata:         metadata,
				CreatedAt:        now,
				UpdatedAt:        now,
			}
		})
		created = append(created, photo)
	}
	return created
}

// GetByID returns the photo with the given id.
func (r *PhotoRepo) GetByID(id uint64) (*model.Photo, error) {
	photo, ok := r.photos.Get(id)
	if !ok {
		return nil, ErrPhotoNotFound
	}
	return photo, nil
}

// FindBySession returns the session's photos in upload order.
func (r *PhotoRepo) FindBySession(sessionID uint64) []*model.Photo {
	return r.photos.Find(func(p *model.Photo) bool { return p.SessionID == sessionID })
}

// FindSelected returns the session's photos carrying the given category
// flag, or any flag when category is "all".
func (r *PhotoRepo) FindSelected(sessionID uint64, category string) []*model.Photo {
	return r.photos.Find(func(p *model.Photo) bool {
		if p.SessionID != sessionID {
			return false
		}
		if category == "all" {
			return p.SelectedAny()
		}
		return p.Selected(category)
	})
}

// CountSelected counts the session's photos carrying the category flag,
// optionally excluding one photo id.  The exclusion keeps the selection
// limit check idempotent when a client re-selects the same photo.
func (r *PhotoRepo) CountSelected(sessionID uint64, category string, excludePhotoID uint64) int {
	return r.photos.Count(func(p *model.Photo) bool {
		return p.SessionID == sessionID && p.ID != excludePhotoID && p.Selected(category)
	})
}

// SelectionChange is a three-valued partial update of a photo's selection
// state: nil pointers leave the corresponding field untouched.
type SelectionChange struct {
	ByClient   *bool
	ForAlbum   *bool
	ForEditing *bool
	Notes      *string
}

// ApplySelection writes the non-nil fields of the change to the photo.
// Limit enforcement happens in the selection service before this call.
func (r *PhotoRepo) ApplySelection(photoID uint64, change SelectionChange) error {
	ok := r.photos.Update(photoID, func(p *model.Photo) {
		if change.ByClient != nil {
			p.SelectedByClient = *change.ByClient
		}
		if change.ForAlbum != nil {
			p.SelectedForAlbum = *change.ForAlbum
		}
		if change.ForEditing != nil {
			p.SelectedForEditing = *change.ForEditing
		}
		if change.Notes != nil {
			p.ClientNotes = *change.Notes
		}
		p.UpdatedAt = time.Now().UTC()
	})
	if !ok {
		return ErrPhotoNotFound
	}
	return nil
}

// Stats computes the selection statistics for one session.  Pending is
// the complement of the set union of the three flags, never of their sum.
func (r *PhotoRepo) Stats(sessionID uint64) model.SessionStats {
	var stats model.SessionStats
	for _, p := range r.FindBySession(sessionID) {
		stats.TotalPhotos++
		if p.SelectedByClient {
			stats.SelectedByClient++
		}
		if p.SelectedForAlbum {
			stats.SelectedForAlbum++
		}
		if p.SelectedForEditing {
			stats.SelectedForEditing++
		}
		if p.SelectedAny() {
			stats.SelectedAny++
		} else {
			stats.Pending++
		}
	}
	return stats
}
