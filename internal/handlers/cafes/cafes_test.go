package cafes_test

import (
	"bytes"
	"html/template"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mahmina/cafe-cortex/internal/handlers/cafes"
	"github.com/Mahmina/cafe-cortex/internal/mocks"
	"github.com/Mahmina/cafe-cortex/internal/models"
	"github.com/Mahmina/cafe-cortex/internal/stores"
)

var pageStubs = template.Must(template.New("").Parse(
	`{{define "index.html"}}index{{end}}` +
		`{{define "cafes.html"}}{{range .cities}}{{.CityName}}:{{range .Cafes}}{{.Name}};{{end}}{{end}}{{end}}` +
		`{{define "add.html"}}add:{{.flash}}{{end}}`))

func testCtx(t *testing.T, w *httptest.ResponseRecorder, req *http.Request) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(pageStubs)
	ctx.Request = req
	return ctx
}

func formRequest(method, path string, form url.Values) *http.Request {
	req, _ := http.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validCafeForm() url.Values {
	return url.Values{
		"name":         {"Nine to Five"},
		"city":         {"1"},
		"website_url":  {"https://a.com"},
		"opening_time": {"08:00"},
		"closing_time": {"18:00"},
		"address":      {"Main St 1, 04109"},
		"rating":       {"4/5"},
		"wifi":         {"yes"},
		"power_outlet": {"no"},
	}
}

func leipzigOnly() []models.City {
	return []models.City{{ID: 1, CityName: "Leipzig"}}
}

func TestList(t *testing.T) {
	w := httptest.NewRecorder()
	ctx := testCtx(t, w, httptest.NewRequest(http.MethodGet, "/cafes", nil))

	cafeStore := new(mocks.CafeStore)
	cafeStore.On("ListCitiesWithCafes").Return([]models.City{
		{ID: 1, CityName: "Leipzig", Cafes: []models.Cafe{{Name: "NINE TO FIVE"}}},
	}, nil)

	h := cafes.NewCafeHandler(cafeStore, t.TempDir())
	h.List(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Leipzig")
	assert.Contains(t, w.Body.String(), "NINE TO FIVE")
	cafeStore.AssertExpectations(t)
}

func TestAdd(t *testing.T) {
	w := httptest.NewRecorder()
	ctx := testCtx(t, w, formRequest(http.MethodPost, "/add", validCafeForm()))

	cafeStore := new(mocks.CafeStore)
	cafeStore.On("ListCities").Return(leipzigOnly(), nil)
	cafeStore.On("CreateCafe", mock.MatchedBy(func(c *models.Cafe) bool {
		return c.Name == "NINE TO FIVE" && // stored uppercased
			c.CityID == 1 &&
			c.WebsiteURL == "https://a.com" &&
			c.ImageFile == nil
	})).Return(nil)

	h := cafes.NewCafeHandler(cafeStore, t.TempDir())
	h.Add(ctx)
	ctx.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cafes", w.Header().Get("Location"))
	cafeStore.AssertExpectations(t)
}

func TestAddUnknownCity(t *testing.T) {
	form := validCafeForm()
	form.Set("city", "9")

	w := httptest.NewRecorder()
	ctx := testCtx(t, w, formRequest(http.MethodPost, "/add", form))

	cafeStore := new(mocks.CafeStore)
	cafeStore.On("ListCities").Return(leipzigOnly(), nil)

	h := cafes.NewCafeHandler(cafeStore, t.TempDir())
	h.Add(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	cafeStore.AssertNotCalled(t, "CreateCafe", mock.Anything)
}

func TestAddMissingFields(t *testing.T) {
	w := httptest.NewRecorder()
	ctx := testCtx(t, w, formRequest(http.MethodPost, "/add", url.Values{"name": {"Nine to Five"}}))

	cafeStore := new(mocks.CafeStore)
	cafeStore.On("ListCities").Return(leipzigOnly(), nil)

	h := cafes.NewCafeHandler(cafeStore, t.TempDir())
	h.Add(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	cafeStore.AssertNotCalled(t, "CreateCafe", mock.Anything)
}

func TestAddDuplicateWebsiteURL(t *testing.T) {
	w := httptest.NewRecorder()
	ctx := testCtx(t, w, formRequest(http.MethodPost, "/add", validCafeForm()))

	cafeStore := new(mocks.CafeStore)
	cafeStore.On("ListCities").Return(leipzigOnly(), nil)
	cafeStore.On("CreateCafe", mock.Anything).Return(stores.ErrDuplicate)

	h := cafes.NewCafeHandler(cafeStore, t.TempDir())
	h.Add(ctx)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already listed")
}

func multipartCafeForm(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, vals := range validCafeForm() {
		require.NoError(t, mw.WriteField(field, vals[0]))
	}
	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAddWithImage(t *testing.T) {
	body, contentType := multipartCafeForm(t, "shop front.png", []byte("png-bytes"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add", body)
	req.Header.Set("Content-Type", contentType)
	ctx := testCtx(t, w, req)

	uploads := t.TempDir()

	cafeStore := new(mocks.CafeStore)
	cafeStore.On("ListCities").Return(leipzigOnly(), nil)
	cafeStore.On("CreateCafe", mock.MatchedBy(func(c *models.Cafe) bool {
		return c.ImageFile != nil && *c.ImageFile == "shop_front.png"
	})).Return(nil)

	h := cafes.NewCafeHandler(cafeStore, uploads)
	h.Add(ctx)
	ctx.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusFound, w.Code)
	saved, err := os.ReadFile(filepath.Join(uploads, "shop_front.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), saved)
	cafeStore.AssertExpectations(t)
}

func TestAddRejectsBadImageExtension(t *testing.T) {
	body, contentType := multipartCafeForm(t, "animation.gif", []byte("gif-bytes"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add", body)
	req.Header.Set("Content-Type", contentType)
	ctx := testCtx(t, w, req)

	uploads := t.TempDir()

	cafeStore := new(mocks.CafeStore)
	cafeStore.On("ListCities").Return(leipzigOnly(), nil)

	h := cafes.NewCafeHandler(cafeStore, uploads)
	h.Add(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	cafeStore.AssertNotCalled(t, "CreateCafe", mock.Anything)

	entries, err := os.ReadDir(uploads)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAddRemovesUploadWhenInsertFails(t *testing.T) {
	body, contentType := multipartCafeForm(t, "shop.jpg", []byte("jpg-bytes"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add", body)
	req.Header.Set("Content-Type", contentType)
	ctx := testCtx(t, w, req)

	uploads := t.TempDir()

	cafeStore := new(mocks.CafeStore)
	cafeStore.On("ListCities").Return(leipzigOnly(), nil)
	cafeStore.On("CreateCafe", mock.Anything).Return(stores.ErrDuplicate)

	h := cafes.NewCafeHandler(cafeStore, uploads)
	h.Add(ctx)

	assert.Equal(t, http.StatusConflict, w.Code)
	_, err := os.Stat(filepath.Join(uploads, "shop.jpg"))
	assert.True(t, os.IsNotExist(err))
}
