package handler

import (
	"encoding/json"
	"fmt"
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

type shopFixture struct {
	e       *echo.Echo
	public  *CommercePublicHandler
	session *model.Session
	pkg     *model.Package
}

func newShopFixture(t *testing.T) *shopFixture {
	t.Helper()
	sessions := repository.NewSessionRepo()
	session, err := sessions.Create(1, "Wedding", "", "Ana", "ana@example.com", time.Now(), model.SessionSettings{})
	require.NoError(t, err)

	packages := repository.NewPackageRepo()
	pkg := packages.Create(1, "Digital Full", "all files", model.PackageDigital, 100, nil)
	commerce := service.NewCommerceService(packages, repository.NewOrderRepo(), repository.NewPaymentRepo())

	return &shopFixture{
		e:       echo.New(),
		public:  NewCommercePublicHandler(sessions, packages, commerce),
		session: session,
		pkg:     pkg,
	}
}

func (f *shopFixture) jsonRequest(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return f.e.NewContext(req, rec), rec
}

func (f *shopFixture) placeOrder(t *testing.T, qty int) uint64 {
	t.Helper()
	body := fmt.Sprintf(`{"order_type":"selection","items":[{"package_id":%d,"quantity":%d}]}`, f.pkg.ID, qty)
	c, rec := f.jsonRequest(body)
	c.SetParamNames("code")
	c.SetParamValues(f.session.AccessCode)
	require.NoError(t, f.public.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var order model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	return order.ID
}

func TestListPackagesHidesPhotographer(t *testing.T) {
	f := newShopFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	c.SetParamNames("code")
	c.SetParamValues(f.session.AccessCode)

	require.NoError(t, f.public.ListPackages(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Digital Full")
	assert.NotContains(t, rec.Body.String(), "photographer_id")
}

func TestCreateOrderTotals(t *testing.T) {
	f := newShopFixture(t)
	body := fmt.Sprintf(`{"items":[{"package_id":%d,"quantity":2}]}`, f.pkg.ID)

	c, rec := f.jsonRequest(body)
	c.SetParamNames("code")
	c.SetParamValues(f.session.AccessCode)
	require.NoError(t, f.public.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var order model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.InDelta(t, 200.0, order.Subtotal, 1e-9)
	assert.InDelta(t, 20.0, order.Tax, 1e-9)
	assert.InDelta(t, 220.0, order.Total, 1e-9)
}

func TestPayOrderTwiceReturnsAlreadyPaid(t *testing.T) {
	f := newShopFixture(t)
	orderID := f.placeOrder(t, 1)
	payBody := `{"method":"credit_card","gateway":"stripe"}`

	c, rec := f.jsonRequest(payBody)
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatUint(orderID, 10))
	require.NoError(t, f.public.PayOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TXN_")

	c, rec = f.jsonRequest(payBody)
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatUint(orderID, 10))
	require.NoError(t, f.public.PayOrder(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, repository.CodeAlreadyPaid, errCode(t, rec))
}

func TestCreateOrderUnknownGallery(t *testing.T) {
	f := newShopFixture(t)
	c, rec := f.jsonRequest(`{"items":[{"package_id":1}]}`)
	c.SetParamNames("code")
	c.SetParamValues("NOPE99")

	require.NoError(t, f.public.CreateOrder(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, repository.CodeGalleryNotFound, errCode(t, rec))
}
