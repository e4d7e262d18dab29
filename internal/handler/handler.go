// Package handler implements the REST API route handlers. Every read
// endpoint follows the same two-branch protocol: attempt the persistence
// operation, and on any failure or empty result degrade to the static
// fallback content instead of surfacing an error. Write endpoints degrade to
// success-shaped responses that were never persisted. The policy lives in
// fallback.go so it is defined and tested once, not copy-pasted per route.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"

	"github.com/ruslanamed/clinic-go/internal/cache"
	"github.com/ruslanamed/clinic-go/internal/config"
	"github.com/ruslanamed/clinic-go/internal/health"
	"github.com/ruslanamed/clinic-go/internal/model"
)

// Store is the slice of the persistence adapter the routes use. A nil Store
// means no database was configured; every primary branch then fails
// immediately and the fallback content serves the whole site.
type Store interface {
	ListPublishedArticles(ctx context.Context) ([]model.Article, error)
	GetArticleByID(ctx context.Context, id int64) (model.Article, error)
	CreateArticle(ctx context.Context, a model.Article) (model.Article, error)
	UpdateArticle(ctx context.Context, a model.Article) (model.Article, error)
	DeleteArticle(ctx context.Context, id int64) error

	ListPublishedGallery(ctx context.Context) ([]model.GalleryImage, error)
	GetGalleryImageByID(ctx context.Context, id int64) (model.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id int64) error

	InsertContactMessage(ctx context.Context, m model.ContactMessage) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

// Handler holds shared dependencies for all API routes.
type Handler struct {
	store     Store
	cache     cache.Cache
	monitor   *health.Monitor
	cfg       *config.Config
	sanitizer *bluemonday.Policy
}

// New creates the API handler. store may be nil (degraded mode from start).
func New(store Store, respCache cache.Cache, monitor *health.Monitor, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		cache:     respCache,
		monitor:   monitor,
		cfg:       cfg,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeRawJSON writes pre-encoded JSON (cached list responses).
func writeRawJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// errorBody is the nested error shape used by 404 and 500 responses.
type errorBody struct {
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
	Details any    `json:"details,omitempty"`
}

// writeError writes a nested {"error":{"message":...}} response.
func writeError(w http.ResponseWriter, statusCode int, body errorBody) {
	writeJSON(w, statusCode, map[string]errorBody{"error": body})
}

// writeFlatError writes the flat {"error":"..."} shape the login endpoint
// uses.
func writeFlatError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// decodeJSON decodes the request body; on failure writes a 400 and returns
// false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, errorBody{Message: "Invalid JSON body"})
		return false
	}
	return true
}

// parseIDParam parses the {id} URL parameter.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
