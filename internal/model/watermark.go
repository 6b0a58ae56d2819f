package model

import (
	"strings"
	"time"
)

// WatermarkSettings holds a photographer's watermark configuration.  The
// actual image processing is simulated: applying a watermark only derives
// a "_wm" path next to the original file.
//
// Fields:
//  ID               – primary identifier.
//  PhotographerID   – owner; one settings row per photographer.
//  Enabled          – master switch.
//  Type             – text, image or both.
//  Text             – watermark text when Type includes text.
//  Position         – one of the nine anchor positions (e.g. bottom-right).
//  Opacity          – 0..1.
//  Size             – small, medium or large.
//  Color            – hex color for text watermarks.
//  ApplyToPreviews  – watermark preview renditions.
//  ApplyToDownloads – watermark delivered files.
//  UpdatedAt        – last settings change.
type WatermarkSettings struct {
	ID               uint64    `json:"id"`
	PhotographerID   uint64    `json:"photographer_id"`
	Enabled          bool      `json:"enabled"`
	Type             string    `json:"type"`
	Text             string    `json:"text"`
	Position         string    `json:"position"`
	Opacity          float64   `json:"opacity"`
	Size             string    `json:"size"`
	Color            string    `json:"color"`
	ApplyToPreviews  bool      `json:"apply_to_previews"`
	ApplyToDownloads bool      `json:"apply_to_downloads"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// WatermarkPositions lists the anchor positions accepted by the settings
// endpoint.
var WatermarkPositions = []string{
	"center",
	"top-left", "top-center", "top-right",
	"middle-left", "middle-right",
	"bottom-left", "bottom-center", "bottom-right",
}

// ValidWatermarkPosition reports whether p is a known anchor position.
func ValidWatermarkPosition(p string) bool {
	for _, v := range WatermarkPositions {
		if v == p {
			return true
		}
	}
	return false
}

// WatermarkedPath derives the simulated output path for a watermarked
// file: the extension is kept and "_wm" is inserted before it.
func WatermarkedPath(filePath string) string {
	dot := strings.LastIndex(filePath, ".")
	if dot <= 0 {
		return filePath + "_wm"
	}
	return filePath[:dot] + "_wm" + filePath[dot:]
}
