package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/repository"
	"github.com/photoflow/photoflow/internal/service"
)

type publicFixture struct {
	e       *echo.Echo
	gallery *PublicGalleryHandler
	client  *ClientHandler
	session *model.Session
	batch   []*model.Photo
}

func newPublicFixture(t *testing.T, settings model.SessionSettings, photoCount int) *publicFixture {
	t.Helper()
	sessions := repository.NewSessionRepo()
	photos := repository.NewPhotoRepo()
	selection := service.NewSelectionService(sessions, photos)

	session, err := sessions.Create(1, "Wedding", "", "Ana", "ana@example.com", time.Now(), settings)
	require.NoError(t, err)

	uploads := make([]repository.PhotoUpload, 0, photoCount)
	for i := 1; i <= photoCount; i++ {
		n := "DSC_000" + strconv.Itoa(i)
		uploads = append(uploads, repository.PhotoUpload{Filename: n + ".jpg", OriginalFilename: n + ".NEF"})
	}
	batch := photos.CreateBatch(session.ID, 1, uploads)

	return &publicFixture{
		e:       echo.New(),
		gallery: NewPublicGalleryHandler(sessions, photos, selection),
		client:  NewClientHandler(sessions, photos, selection),
		session: session,
		batch:   batch,
	}
}

func (f *publicFixture) request(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return f.e.NewContext(req, rec), rec
}

func errCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	code, _ := body["error"]["code"].(string)
	return code
}

func TestViewGalleryUnknownCode(t *testing.T) {
	f := newPublicFixture(t, model.SessionSettings{}, 1)

	c, rec := f.request(http.MethodGet, "")
	c.SetParamNames("code")
	c.SetParamValues("NOPE99")

	require.NoError(t, f.gallery.ViewGallery(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, repository.CodeGalleryNotFound, errCode(t, rec))
}

func TestViewGalleryHidesStoragePaths(t *testing.T) {
	f := newPublicFixture(t, model.SessionSettings{}, 2)

	c, rec := f.request(http.MethodGet, "")
	c.SetParamNames("code")
	c.SetParamValues(f.session.AccessCode)

	require.NoError(t, f.gallery.ViewGallery(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.NotContains(t, body, "file_path")
	assert.NotContains(t, body, "/uploads/")
	assert.NotContains(t, body, "photographer_id")
	assert.Contains(t, body, "thumbnail")
}

func TestSelectPhotoLimitEnvelope(t *testing.T) {
	one := 1
	f := newPublicFixture(t, model.SessionSettings{AllowAlbumSelection: true, MaxAlbumSelections: &one}, 2)

	selectBody := `{"category":"album","selected":true}`

	c, rec := f.request(http.MethodPost, selectBody)
	c.SetParamNames("code", "photo_id")
	c.SetParamValues(f.session.AccessCode, strconv.FormatUint(f.batch[0].ID, 10))
	require.NoError(t, f.gallery.SelectPhoto(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = f.request(http.MethodPost, selectBody)
	c.SetParamNames("code", "photo_id")
	c.SetParamValues(f.session.AccessCode, strconv.FormatUint(f.batch[1].ID, 10))
	require.NoError(t, f.gallery.SelectPhoto(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, repository.CodeSelectionLimit, errCode(t, rec))
	assert.Contains(t, rec.Body.String(), `"limit":1`)
}

func TestFinalizeEndpointReturnsFilter(t *testing.T) {
	f := newPublicFixture(t, model.SessionSettings{AllowAlbumSelection: true}, 2)

	c, rec := f.request(http.MethodPost, `{"category":"album","selected":true}`)
	c.SetParamNames("code", "photo_id")
	c.SetParamValues(f.session.AccessCode, strconv.FormatUint(f.batch[0].ID, 10))
	require.NoError(t, f.gallery.SelectPhoto(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = f.request(http.MethodPost, "")
	c.SetParamNames("code")
	c.SetParamValues(f.session.AccessCode)
	require.NoError(t, f.client.Finalize(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DSC_0001", body["lightroom_filter"])
	code, _ := body["filter_code"].(string)
	assert.True(t, strings.HasPrefix(code, "PHOTOFLOW_"+f.session.AccessCode+"_"))

	// a second finalize reports the gallery as closed
	c, rec = f.request(http.MethodPost, "")
	c.SetParamNames("code")
	c.SetParamValues(f.session.AccessCode)
	require.NoError(t, f.client.Finalize(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, repository.CodeGalleryNotAvailable, errCode(t, rec))
}

func TestFinalizeWithoutSelection(t *testing.T) {
	f := newPublicFixture(t, model.SessionSettings{}, 1)

	c, rec := f.request(http.MethodPost, "")
	c.SetParamNames("code")
	c.SetParamValues(f.session.AccessCode)
	require.NoError(t, f.client.Finalize(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, repository.CodeNoPhotosSelected, errCode(t, rec))
}
