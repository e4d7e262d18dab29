package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ruslanamed/clinic-go/internal/fallback"
	"github.com/ruslanamed/clinic-go/internal/model"
)

const articlesListCacheKey = "articles:list"

// ListArticles handles GET /api/articles. Always 200: database rows when
// available, static fallback otherwise. Only database-backed responses are
// cached, so degraded mode keeps probing the pool on every request.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if body, err := h.cache.Get(ctx, articlesListCacheKey); err == nil {
		writeRawJSON(w, body)
		return
	}

	fromStore := true
	articles := listWithFallback(ctx, "articles",
		primaryOrNoStore(h.store, func(ctx context.Context) ([]model.Article, error) {
			return h.store.ListPublishedArticles(ctx)
		}),
		func() []model.Article {
			fromStore = false
			return fallback.Articles()
		})

	if fromStore {
		if body, err := json.Marshal(articles); err == nil {
			_ = h.cache.Set(ctx, articlesListCacheKey, body, 0)
		}
	}
	writeJSON(w, http.StatusOK, articles)
}

// GetArticle handles GET /api/articles/{id}.
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, errorBody{Message: "Article not found"})
		return
	}

	article, ok := itemWithFallback(r.Context(), "article",
		primaryOrNoStore(h.store, func(ctx context.Context) (model.Article, error) {
			return h.store.GetArticleByID(ctx, id)
		}),
		func() (model.Article, bool) { return fallback.ArticleByID(id) })
	if !ok {
		writeError(w, http.StatusNotFound, errorBody{Message: "Article not found"})
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// CreateArticle handles POST /api/articles. A failed insert still responds
// 200 with an article shaped like a stored one, carrying a timestamp id.
func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		model.Article
		Published *bool `json:"published"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	in := req.Article
	in.Published = req.Published == nil || *req.Published
	if errs := in.Validate(); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errorBody{Message: "Validation failed", Details: errs})
		return
	}
	h.sanitizeArticle(&in)

	created, persisted := writeOpWithFallback(r.Context(), "article",
		primaryOrNoStore(h.store, func(ctx context.Context) (model.Article, error) {
			return h.store.CreateArticle(ctx, in)
		}),
		func() model.Article {
			now := time.Now().UTC()
			out := in
			out.ID = now.UnixMilli()
			out.CreatedAt = now
			out.UpdatedAt = now
			return out
		})
	if persisted {
		h.invalidate(r.Context(), articlesListCacheKey)
	}
	writeJSON(w, http.StatusOK, created)
}

// UpdateArticle handles PUT /api/articles/{id}. When the row cannot be
// updated, for any reason including a missing id, the response is the
// mock-mode acknowledgement rather than an error.
func (h *Handler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, errorBody{Message: "Article not found"})
		return
	}
	var in model.Article
	if !decodeJSON(w, r, &in) {
		return
	}
	h.sanitizeArticle(&in)
	in.ID = id

	updated, persisted := writeOpWithFallback(r.Context(), "article",
		primaryOrNoStore(h.store, func(ctx context.Context) (model.Article, error) {
			return h.store.UpdateArticle(ctx, in)
		}),
		func() model.Article { return model.Article{} })
	if !persisted {
		writeJSON(w, http.StatusOK, map[string]any{"id": id, "message": "Article updated (mock mode)"})
		return
	}
	h.invalidate(r.Context(), articlesListCacheKey)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteArticle handles DELETE /api/articles/{id}.
func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, errorBody{Message: "Article not found"})
		return
	}

	_, persisted := writeOpWithFallback(r.Context(), "article",
		primaryOrNoStore(h.store, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, h.store.DeleteArticle(ctx, id)
		}),
		func() struct{} { return struct{}{} })
	if !persisted {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Article deleted (mock mode)"})
		return
	}
	h.invalidate(r.Context(), articlesListCacheKey)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Article deleted successfully"})
}

// sanitizeArticle strips markup from admin-submitted text before it is
// stored or echoed back.
func (h *Handler) sanitizeArticle(a *model.Article) {
	a.Title = h.sanitizer.Sanitize(a.Title)
	a.Excerpt = h.sanitizer.Sanitize(a.Excerpt)
	a.Category = h.sanitizer.Sanitize(a.Category)
	a.Content.Intro = h.sanitizer.Sanitize(a.Content.Intro)
	for i := range a.Content.Sections {
		a.Content.Sections[i].Heading = h.sanitizer.Sanitize(a.Content.Sections[i].Heading)
		a.Content.Sections[i].Text = h.sanitizer.Sanitize(a.Content.Sections[i].Text)
	}
}

// invalidate drops a cached list after a persisted mutation. A failed
// delete is not an error; stale entries expire on their own TTL.
func (h *Handler) invalidate(ctx context.Context, key string) {
	_ = h.cache.Delete(ctx, key)
}
