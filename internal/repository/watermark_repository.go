package repository

import (
	"time"

	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/store"
)

// WatermarkRepo stores per-photographer watermark settings.  Each
// photographer has at most one settings row; GetOrCreate lazily creates a
// default configuration on first access.
type WatermarkRepo struct {
	settings *store.Collection[model.WatermarkSettings]
}

// NewWatermarkRepo returns a WatermarkRepo over a fresh collection.
func NewWatermarkRepo() *WatermarkRepo {
	return &WatermarkRepo{settings: store.NewCollection[model.WatermarkSettings]()}
}

// GetOrCreate returns the photographer's settings, creating the default
// text watermark when none exist yet.
func (r *WatermarkRepo) GetOrCreate(photographerID uint64, defaultText string) *model.WatermarkSettings {
	if ws, ok := r.settings.First(func(w *model.WatermarkSettings) bool { return w.PhotographerID == photographerID }); ok {
		return ws
	}
	if defaultText == "" {
		defaultText = "PhotoFlow"
	}
	return r.settings.Insert(func(id uint64) *model.WatermarkSettings {
		return &model.WatermarkSettings{
			ID:              id,
			PhotographerID:  photographerID,
			Enabled:         true,
			Type:            "text",
			Text:            defaultText,
			Position:        "bottom-right",
			Opacity:         0.7,
			Size:            "medium",
			Color:           "#FFFFFF",
			ApplyToPreviews: true,
			UpdatedAt:       time.Now().UTC(),
		}
	})
}

// Get returns the photographer's settings without creating defaults.
func (r *WatermarkRepo) Get(photographerID uint64) (*model.WatermarkSettings, bool) {
	return r.settings.First(func(w *model.WatermarkSettings) bool { return w.PhotographerID == photographerID })
}

// Update applies fn to the photographer's settings row, creating the
// default row first when necessary.
func (r *WatermarkRepo) Update(photographerID uint64, defaultText string, fn func(*model.WatermarkSettings)) *model.WatermarkSettings {
	ws := r.GetOrCreate(photographerID, defaultText)
	r.settings.Update(ws.ID, func(w *model.WatermarkSettings) {
		fn(w)
		w.UpdatedAt = time.Now().UTC()
	})
	updated, _ := r.settings.Get(ws.ID)
	return updated
}
