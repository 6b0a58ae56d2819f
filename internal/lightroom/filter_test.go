package lightroom

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoflow/photoflow/internal/model"
)

func TestBaseNameStripsOneKnownExtension(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"DSC_0001.NEF", "DSC_0001"},
		{"DSC_0001.nef", "DSC_0001"},
		{"IMG_1234.CR2", "IMG_1234"},
		{"photo.jpg", "photo"},
		{"photo.JPEG", "photo"},
		{"scan.tiff", "scan"},
		// only one extension comes off
		{"DSC_0001.NEF.jpg", "DSC_0001.NEF"},
		// unknown extensions stay
		{"archive.zip", "archive.zip"},
		{"noextension", "noextension"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BaseName(tc.in), "input %q", tc.in)
	}
}

func selPhoto(name string, album, editing, client bool) *model.Photo {
	return &model.Photo{
		OriginalFilename:   name,
		SelectedForAlbum:   album,
		SelectedForEditing: editing,
		SelectedByClient:   client,
	}
}

func TestGeneratePartitionsByCategory(t *testing.T) {
	photos := []*model.Photo{
		selPhoto("DSC_0001.NEF", true, false, false),
		selPhoto("DSC_0002.NEF", false, true, false),
		selPhoto("DSC_0003.NEF", true, true, true),
		selPhoto("DSC_0004.NEF", false, false, false),
	}

	f := Generate(photos)

	assert.Equal(t, []string{"DSC_0001", "DSC_0003"}, f.Album)
	assert.Equal(t, []string{"DSC_0002", "DSC_0003"}, f.Editing)
	assert.Equal(t, []string{"DSC_0003"}, f.Client)
	// union lists each selected photo exactly once, in upload order
	assert.Equal(t, []string{"DSC_0001", "DSC_0002", "DSC_0003"}, f.All)
}

func TestGenerateIsDeterministic(t *testing.T) {
	photos := []*model.Photo{
		selPhoto("A.NEF", true, false, false),
		selPhoto("B.NEF", false, true, true),
	}
	first := Generate(photos).Render()
	second := Generate(photos).Render()
	assert.Equal(t, first, second)
}

func TestJoinUsesORSeparator(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "A", Join([]string{"A"}))
	assert.Equal(t, "A OR B OR C", Join([]string{"A", "B", "C"}))
}

func TestRenderJoinsEveryCategory(t *testing.T) {
	photos := []*model.Photo{
		selPhoto("DSC_0001.NEF", true, true, true),
		selPhoto("DSC_0002.NEF", true, false, false),
	}
	text := Generate(photos).Render()

	assert.Equal(t, "DSC_0001 OR DSC_0002", text.AlbumFilter)
	assert.Equal(t, "DSC_0001", text.EditingFilter)
	assert.Equal(t, "DSC_0001", text.ClientFilter)
	assert.Equal(t, "DSC_0001 OR DSC_0002", text.AllSelectedFilter)
}

func TestFilterCodeFormat(t *testing.T) {
	now := time.UnixMilli(1736899123456).UTC()
	code := FilterCode("AB3XY9", now)

	require.True(t, strings.HasPrefix(code, "PHOTOFLOW_AB3XY9_"))
	suffix := strings.TrimPrefix(code, "PHOTOFLOW_AB3XY9_")
	assert.Len(t, suffix, 6)
	assert.Equal(t, "123456", suffix)
}
