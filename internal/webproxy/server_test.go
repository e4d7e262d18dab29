package webproxy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruslanamed/clinic-go/internal/config"
)

func newTestServer(t *testing.T, backendURL string) (*Server, http.Handler) {
	t.Helper()

	dist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte("<!doctype html><title>clinic</title>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dist, "main.js"), []byte("console.log('app')"), 0o644))

	s, err := New(&config.ProxyConfig{BackendURL: backendURL, DistDir: dist}, nil)
	require.NoError(t, err)
	return s, s.Routes()
}

func TestServesStaticAssets(t *testing.T) {
	_, router := newTestServer(t, "http://localhost:3001")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/main.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")
}

func TestUnknownPathGetsIndexHTML(t *testing.T) {
	_, router := newTestServer(t, "http://localhost:3001")

	for _, path := range []string{"/", "/articles/3", "/admin/login"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "clinic", path)
	}
}

func TestAPIRequestsForwarded(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/articles", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1}]`))
	}))
	defer backend.Close()

	_, router := newTestServer(t, backend.URL)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1}]`, rec.Body.String())
}

func TestProxyErrorShape(t *testing.T) {
	// Point at a closed port.
	backend := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	backend.Close()

	_, router := newTestServer(t, backend.URL)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Backend service unavailable", got["error"])
}

func TestHealthEndpoint(t *testing.T) {
	_, router := newTestServer(t, "http://localhost:3001")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Status   string  `json:"status"`
		Uptime   float64 `json:"uptime"`
		Frontend string  `json:"frontend"`
		Backend  string  `json:"backend"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "OK", got.Status)
	assert.Equal(t, "angular", got.Frontend)
	assert.Equal(t, "http://localhost:3001", got.Backend)
}

func TestRejectsPathTraversal(t *testing.T) {
	_, router := newTestServer(t, "http://localhost:3001")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.Path = "/../secrets.txt"
	router.ServeHTTP(rec, req)
	// Cleaned to a path inside dist; falls through to index.html.
	assert.Equal(t, http.StatusOK, rec.Code)
}
