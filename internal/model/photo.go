package model

import "time"

// Selection categories accepted by the selection endpoint.  The three
// categories are independent facets, not an enum: a photo can carry any
// subset of the three flags at once.
const (
	SelectionAlbum   = "album"
	SelectionEditing = "editing"
	SelectionGeneral = "general"
)

// Photo is a single uploaded image inside a session.  Photos are created
// in batches on upload and afterwards only their selection flags and
// client notes change; they are never deleted while the session lives.
//
// Fields:
//  ID               – primary identifier.
//  SessionID        – owning session.
//  PhotographerID   – owning photographer (denormalized from the session).
//  Filename         – delivery filename shown to the client (usually JPG).
//  OriginalFilename – camera filename, typically RAW (e.g. DSC_0001.NEF).
//  FilePath         – storage path of the delivery file.
//  ThumbnailPath    – storage path of the thumbnail.
//  FileSize         – size in bytes.
//  Width, Height    – pixel dimensions.
//  SelectedByClient – general selection flag.
//  SelectedForAlbum – album selection flag.
//  SelectedForEditing – editing selection flag.
//  ClientNotes      – free text the client attached to the photo.
//  Metadata         – arbitrary capture metadata (camera, lens, ...).
//  CreatedAt        – upload timestamp.
//  UpdatedAt        – last selection update.
type Photo struct {
	ID                 uint64         `json:"id"`
	SessionID          uint64         `json:"session_id"`
	PhotographerID     uint64         `json:"photographer_id"`
	Filename           string         `json:"filename"`
	OriginalFilename   string         `json:"original_filename"`
	FilePath           string         `json:"file_path"`
	ThumbnailPath      string         `json:"thumbnail_path"`
	FileSize           int64          `json:"file_size"`
	Width              int            `json:"width"`
	Height             int            `json:"height"`
	SelectedByClient   bool           `json:"selected_by_client"`
	SelectedForAlbum   bool           `json:"selected_for_album"`
	SelectedForEditing bool           `json:"selected_for_editing"`
	ClientNotes        string         `json:"client_notes"`
	Metadata           map[string]any `json:"metadata"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// SelectedAny reports whether any of the three selection flags is set.
// "Pending" photos in the session statistics are exactly those for which
// this returns false.
func (p *Photo) SelectedAny() bool {
	return p.SelectedByClient || p.SelectedForAlbum || p.SelectedForEditing
}

// Selected reports whether the photo carries the flag for the given
// category.  Unknown categories report false.
func (p *Photo) Selected(category string) bool {
	switch category {
	case SelectionAlbum:
		return p.SelectedForAlbum
	case SelectionEditing:
		return p.SelectedForEditing
	case SelectionGeneral:
		return p.SelectedByClient
	}
	return false
}

// ClientView returns the subset of photo data a gallery client may see.
// Storage paths stay private; the client works with ids, names and their
// own selection state.
func (p *Photo) ClientView() map[string]any {
	return map[string]any{
		"id":                   p.ID,
		"filename":             p.Filename,
		"thumbnail":            p.ThumbnailPath,
		"width":                p.Width,
		"height":               p.Height,
		"selected_by_client":   p.SelectedByClient,
		"selected_for_album":   p.SelectedForAlbum,
		"selected_for_editing": p.SelectedForEditing,
		"client_notes":         p.ClientNotes,
	}
}

// SessionStats summarizes selection state across one session's photos.
// Pending counts photos with no flag at all, so the union of the three
// categories plus pending always equals the total.
type SessionStats struct {
	TotalPhotos        int `json:"total_photos"`
	SelectedByClient   int `json:"selected_by_client"`
	SelectedForAlbum   int `json:"selected_for_album"`
	SelectedForEditing int `json:"selected_for_editing"`
	SelectedAny        int `json:"selected_any"`
	Pending            int `json:"pending"`
}
