package content

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosec/site-backend/internal/uploads"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	files, err := uploads.NewDiskStore(dir)
	require.NoError(t, err)
	svc := NewService(NewMemoryStore(), files)
	h := NewHandler(svc, files)

	router := gin.New()
	api := router.Group("/api")
	// admin gate is exercised in the middleware package; content tests
	// use a pass-through
	h.Register(api, func(c *gin.Context) { c.Next() })
	return router, dir
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeDoc(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListEndpointSeedsAndRenamesID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/programs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	docs := decodeList(t, w)
	require.Len(t, docs, 5)
	for _, d := range docs {
		assert.NotEmpty(t, d["id"])
		_, hasInternal := d["_id"]
		assert.False(t, hasInternal)
	}
}

func TestCreateEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/media", map[string]interface{}{
		"key": "hero_banner",
		"url": "/api/uploads/gallery/x.png",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	doc := decodeDoc(t, w)
	assert.NotEmpty(t, doc["id"])
	assert.Equal(t, "hero_banner", doc["key"])

	got := doJSON(router, http.MethodGet, "/api/media/"+doc["id"].(string), nil)
	assert.Equal(t, http.StatusOK, got.Code)
}

func TestCreateEndpointMissingRequiredField(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/media", map[string]interface{}{"key": "only-key"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "url")
}

func TestUpdateEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	created := decodeDoc(t, doJSON(router, http.MethodPost, "/api/media", map[string]interface{}{
		"key": "k", "url": "/a.png", "alt_en": "A",
	}))
	id := created["id"].(string)

	w := doJSON(router, http.MethodPut, "/api/media/"+id, map[string]interface{}{"url": "/b.png"})
	require.Equal(t, http.StatusOK, w.Code)
	doc := decodeDoc(t, w)
	assert.Equal(t, "/b.png", doc["url"])
	assert.Equal(t, "A", doc["alt_en"], "untouched fields survive a partial update")
}

func TestUpdateEndpointEmptyBody(t *testing.T) {
	router, _ := newTestRouter(t)

	created := decodeDoc(t, doJSON(router, http.MethodPost, "/api/media", map[string]interface{}{
		"key": "k", "url": "/a.png",
	}))

	w := doJSON(router, http.MethodPut, "/api/media/"+created["id"].(string), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEndpointNotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(router, http.MethodGet, "/api/media/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	docs := decodeList(t, doJSON(router, http.MethodGet, "/api/gallery", nil))
	require.NotEmpty(t, docs)
	id := docs[0]["id"].(string)

	w := doJSON(router, http.MethodDelete, "/api/gallery/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := doJSON(router, http.MethodGet, "/api/gallery/"+id, nil)
	assert.Equal(t, http.StatusNotFound, got.Code)
}

func TestMediaHasNoDeleteRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	created := decodeDoc(t, doJSON(router, http.MethodPost, "/api/media", map[string]interface{}{
		"key": "k", "url": "/a.png",
	}))

	w := doJSON(router, http.MethodDelete, "/api/media/"+created["id"].(string), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func multipartRequest(t *testing.T, method, path, filePart, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile(filePart, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadEndpointRejectsBadExtension(t *testing.T) {
	router, dir := newTestRouter(t)

	req := multipartRequest(t, http.MethodPost, "/api/gallery/upload", "file", "malware.exe", []byte("nope"), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not allowed")

	_, err := os.Stat(filepath.Join(dir, "gallery"))
	assert.True(t, os.IsNotExist(err), "rejected upload must not leave a file behind")
}

func TestUploadEndpointRequiresFile(t *testing.T) {
	router, _ := newTestRouter(t)

	req := multipartRequest(t, http.MethodPost, "/api/gallery/upload", "file", "", nil, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadThenServeThenDelete(t *testing.T) {
	router, _ := newTestRouter(t)

	req := multipartRequest(t, http.MethodPost, "/api/gallery/upload", "file", "photo.png", []byte("png-bytes"), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	up := decodeDoc(t, w)
	url := up["image_url"].(string)
	require.True(t, strings.HasPrefix(url, "/api/uploads/gallery/"))

	created := decodeDoc(t, doJSON(router, http.MethodPost, "/api/gallery", map[string]interface{}{
		"title_en": "T", "title_fr": "T", "media_key": "k", "image_url": url,
	}))

	serve := doJSON(router, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, serve.Code)
	assert.Equal(t, "image/png", serve.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", serve.Body.String())

	del := doJSON(router, http.MethodDelete, "/api/gallery/"+created["id"].(string), nil)
	require.Equal(t, http.StatusOK, del.Code)

	gone := doJSON(router, http.MethodGet, url, nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestCreateWithImageEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := multipartRequest(t, http.MethodPost, "/api/leadership/with-image", "image", "head.jpg", []byte("jpg"), map[string]string{
		"name":    "Jane Doe",
		"role_en": "Chair",
		"role_fr": "Présidente",
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	doc := decodeDoc(t, w)
	assert.Equal(t, "Jane Doe", doc["name"])
	url, _ := doc["image_url"].(string)
	assert.True(t, strings.HasPrefix(url, "/api/uploads/leadership/"))
}

func TestUpdateWithImageReplacesFile(t *testing.T) {
	router, dir := newTestRouter(t)

	create := multipartRequest(t, http.MethodPost, "/api/events/with-image", "image", "old.png", []byte("old"), map[string]string{
		"date_en": "Jan 1", "date_fr": "1 jan", "title_en": "T", "title_fr": "T",
		"location_en": "L", "location_fr": "L", "summary_en": "S", "summary_fr": "S",
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, create)
	require.Equal(t, http.StatusCreated, w.Code)
	doc := decodeDoc(t, w)
	id := doc["id"].(string)
	oldURL := doc["image_url"].(string)

	update := multipartRequest(t, http.MethodPut, "/api/events/"+id+"/with-image", "image", "new.png", []byte("new"), map[string]string{
		"title_en": "Updated",
	})
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, update)
	require.Equal(t, http.StatusOK, w2.Code)
	updated := decodeDoc(t, w2)
	assert.Equal(t, "Updated", updated["title_en"])
	assert.NotEqual(t, oldURL, updated["image_url"])

	entries, err := os.ReadDir(filepath.Join(dir, "events"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "superseded file is removed")
}

func TestSingletonEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/content/hero", nil)
	require.Equal(t, http.StatusOK, w.Code)
	hero := decodeDoc(t, w)
	assert.NotEmpty(t, hero["id"])
	assert.NotEmpty(t, hero["title_en"])

	put := doJSON(router, http.MethodPut, "/api/content/hero", map[string]interface{}{"title_en": "Changed"})
	require.Equal(t, http.StatusOK, put.Code)
	updated := decodeDoc(t, put)
	assert.Equal(t, "Changed", updated["title_en"])
	assert.Equal(t, hero["id"], updated["id"])

	empty := doJSON(router, http.MethodPut, "/api/content/about", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, empty.Code)
}
