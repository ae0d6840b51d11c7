package handler

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"previewforge/internal/store"
)

const testModel = `{
  "screens": [
    {"name": "Login", "components": [
      {"type": "header", "props": {"title": "Welcome"}},
      {"type": "button", "props": {"text": "Sign In"}}
    ]}
  ]
}`

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	records := store.New(filepath.Join(t.TempDir(), "records.json"))
	h, err := New(records, nil, 8)
	require.NoError(t, err)
	return h
}

func TestHandleConvert(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(testModel))
	rec := httptest.NewRecorder()
	h.HandleConvert(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID        string            `json:"id"`
		Cached    bool              `json:"cached"`
		Files     map[string]string `json:"files"`
		FileCount int               `json:"file_count"`
		Errors    []string          `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	require.False(t, resp.Cached)
	require.Empty(t, resp.Errors)
	require.Equal(t, len(resp.Files), resp.FileCount)
	require.Contains(t, resp.Files, "src/screens/LoginScreen.tsx")
	require.Contains(t, resp.Files["src/screens/LoginScreen.tsx"], "Welcome")
}

func TestHandleConvertCacheHit(t *testing.T) {
	h := newTestHandler(t)

	first := httptest.NewRecorder()
	h.HandleConvert(first, httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(testModel)))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.HandleConvert(second, httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(testModel)))
	require.Equal(t, http.StatusOK, second.Code)

	var resp struct {
		Cached bool `json:"cached"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	require.True(t, resp.Cached)
}

func TestHandleConvertRejectsBadInput(t *testing.T) {
	h := newTestHandler(t)

	for _, body := range []string{"", "   ", "[1,2,3]", `"text"`} {
		rec := httptest.NewRecorder()
		h.HandleConvert(rec, httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body)))
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}

	rec := httptest.NewRecorder()
	h.HandleConvert(rec, httptest.NewRequest(http.MethodGet, "/convert", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleExportReactNative(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/export/react-native", strings.NewReader(testModel))
	rec := httptest.NewRecorder()
	h.HandleExportReactNative(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/zip", rec.Header().Get("Content-Type"))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	r, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	require.Contains(t, names, "generated-rn-app/package.json")
	require.Contains(t, names, "generated-rn-app/src/screens/LoginScreen.tsx")
}

func TestHandleConversionsListsRecords(t *testing.T) {
	h := newTestHandler(t)

	h.HandleConvert(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(testModel)))

	rec := httptest.NewRecorder()
	h.HandleConversions(rec, httptest.NewRequest(http.MethodGet, "/conversions", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Conversions []store.Record `json:"conversions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Conversions, 1)
	require.Equal(t, 1, resp.Conversions[0].ScreenCount)
	require.NotZero(t, resp.Conversions[0].FileCount)
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
