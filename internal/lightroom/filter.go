// Package lightroom derives search-filter strings for Adobe Lightroom
// from a session's selected photos.  The output is meant to be pasted
// verbatim into Lightroom's filename search field: base filenames joined
// with " OR ".
package lightroom

import (
	"fmt"
	"strings"
	"time"

	"github.com/photoflow/photoflow/internal/model"
)

// Separator joins base filenames in a filter string.  Lightroom treats
// the literal OR as a disjunction in its filename search.
const Separator = " OR "

// rawExtensions and processedExtensions form the allow-list of suffixes
// stripped from original filenames.  Matching is case-insensitive and at
// most one trailing extension is removed.
var rawExtensions = []string{"NEF", "CR2", "ARW", "RAF", "ORF", "DNG", "RW2"}
var processedExtensions = []string{"JPG", "JPEG", "PNG", "TIFF"}

// BaseName strips one recognized extension from the end of a filename.
// Filenames with an unknown extension are returned unchanged so the
// filter still matches something in Lightroom.
func BaseName(filename string) string {
	for _, ext := range rawExtensions {
		if trimmed, ok := stripSuffix(filename, ext); ok {
			return trimmed
		}
	}
	for _, ext := range processedExtensions {
		if trimmed, ok := stripSuffix(filename, ext); ok {
			return trimmed
		}
	}
	return filename
}

func stripSuffix(name, ext string) (string, bool) {
	suffix := "." + ext
	if len(name) > len(suffix) && strings.EqualFold(name[len(name)-len(suffix):], suffix) {
		return name[:len(name)-len(suffix)], true
	}
	return name, false
}

// Filters holds the base-name lists per selection category.  All is the
// union: photos carrying at least one flag, each listed once.  Lists keep
// the photos' insertion order, which makes the joined strings a pure
// function of the current selection state.
type Filters struct {
	Album   []string `json:"selected_for_album"`
	Editing []string `json:"selected_for_editing"`
	Client  []string `json:"client_selected"`
	All     []string `json:"all_selected"`
}

// Generate partitions the photos by selection category and maps each
// selected photo's original filename to its base name.
func Generate(photos []*model.Photo) Filters {
	f := Filters{
		Album:   []string{},
		Editing: []string{},
		Client:  []string{},
		All:     []string{},
	}
	for _, p := range photos {
		base := BaseName(p.OriginalFilename)
		if p.SelectedForAlbum {
			f.Album = append(f.Album, base)
		}
		if p.SelectedForEditing {
			f.Editing = append(f.Editing, base)
		}
		if p.SelectedByClient {
			f.Client = append(f.Client, base)
		}
		if p.SelectedAny() {
			f.All = append(f.All, base)
		}
	}
	return f
}

// Join renders one category list as a pasteable filter string.  An empty
// list yields an empty string, not an error.
func Join(names []string) string {
	return strings.Join(names, Separator)
}

// Text bundles the four joined filter strings for API responses.
type Text struct {
	AlbumFilter       string `json:"album_filter"`
	EditingFilter     string `json:"editing_filter"`
	ClientFilter      string `json:"client_filter"`
	AllSelectedFilter string `json:"all_selected_filter"`
}

// Render joins every category of f into its pasteable form.
func (f Filters) Render() Text {
	return Text{
		AlbumFilter:       Join(f.Album),
		EditingFilter:     Join(f.Editing),
		ClientFilter:      Join(f.Client),
		AllSelectedFilter: Join(f.All),
	}
}

// FilterCode builds the opaque code handed to the client on finalize.
// The scheme follows the predecessor system: session access code plus the
// trailing six digits of the current Unix-millisecond clock.  Finalize is
// accepted at most once per session, so the code only needs to be unique
// per session, not globally.
func FilterCode(accessCode string, now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return fmt.Sprintf("PHOTOFLOW_%s_%s", accessCode, ms)
}

// Instructions returned alongside the finalize response; mirrored from
// the workflow sheet photographers receive.
var Instructions = []string{
	"1. Open Adobe Lightroom with your RAW files",
	"2. In the filter bar above the grid, click the magnifying glass",
	"3. Choose \"Filename\"",
	"4. Paste the filter below into the search field",
	"5. Press Enter - only the selected photos remain visible",
	"6. Edit exactly the RAWs your client chose",
}
