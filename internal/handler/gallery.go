package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ruslanamed/clinic-go/internal/fallback"
	"github.com/ruslanamed/clinic-go/internal/model"
)

const galleryListCacheKey = "gallery:list"

// ListGallery handles GET /api/gallery, ordered by the display order column
// on the persistence path.
func (h *Handler) ListGallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if body, err := h.cache.Get(ctx, galleryListCacheKey); err == nil {
		writeRawJSON(w, body)
		return
	}

	fromStore := true
	images := listWithFallback(ctx, "gallery",
		primaryOrNoStore(h.store, func(ctx context.Context) ([]model.GalleryImage, error) {
			return h.store.ListPublishedGallery(ctx)
		}),
		func() []model.GalleryImage {
			fromStore = false
			return fallback.Gallery()
		})

	if fromStore {
		if body, err := json.Marshal(images); err == nil {
			_ = h.cache.Set(ctx, galleryListCacheKey, body, 0)
		}
	}
	writeJSON(w, http.StatusOK, images)
}

// GetGalleryImage handles GET /api/gallery/{id}.
func (h *Handler) GetGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, errorBody{Message: "Image not found"})
		return
	}

	image, ok := itemWithFallback(r.Context(), "gallery image",
		primaryOrNoStore(h.store, func(ctx context.Context) (model.GalleryImage, error) {
			return h.store.GetGalleryImageByID(ctx, id)
		}),
		func() (model.GalleryImage, bool) { return fallback.GalleryImageByID(id) })
	if !ok {
		writeError(w, http.StatusNotFound, errorBody{Message: "Image not found"})
		return
	}
	writeJSON(w, http.StatusOK, image)
}

// CreateGalleryImage handles POST /api/gallery.
func (h *Handler) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		model.GalleryImage
		Order     *int64 `json:"order"`
		Published *bool  `json:"published"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	in := req.GalleryImage
	if in.ImageType == "" {
		in.ImageType = model.ImageTypeImage
	}
	in.Order = 1
	if req.Order != nil {
		in.Order = *req.Order
	}
	in.Published = req.Published == nil || *req.Published
	if errs := in.Validate(); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errorBody{Message: "Validation failed", Details: errs})
		return
	}
	in.Title = h.sanitizer.Sanitize(in.Title)
	in.Description = h.sanitizer.Sanitize(in.Description)

	created, persisted := writeOpWithFallback(r.Context(), "gallery image",
		primaryOrNoStore(h.store, func(ctx context.Context) (model.GalleryImage, error) {
			return h.store.CreateGalleryImage(ctx, in)
		}),
		func() model.GalleryImage {
			now := time.Now().UTC()
			out := in
			out.ID = now.UnixMilli()
			out.CreatedAt = now
			out.UpdatedAt = now
			return out
		})
	if persisted {
		h.invalidate(r.Context(), galleryListCacheKey)
	}
	writeJSON(w, http.StatusOK, created)
}

// UpdateGalleryImage handles PUT /api/gallery/{id}.
func (h *Handler) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, errorBody{Message: "Image not found"})
		return
	}
	var in model.GalleryImage
	if !decodeJSON(w, r, &in) {
		return
	}
	in.ID = id
	in.Title = h.sanitizer.Sanitize(in.Title)
	in.Description = h.sanitizer.Sanitize(in.Description)

	updated, persisted := writeOpWithFallback(r.Context(), "gallery image",
		primaryOrNoStore(h.store, func(ctx context.Context) (model.GalleryImage, error) {
			return h.store.UpdateGalleryImage(ctx, in)
		}),
		func() model.GalleryImage { return model.GalleryImage{} })
	if !persisted {
		writeJSON(w, http.StatusOK, map[string]any{"id": id, "message": "Gallery image updated (mock mode)"})
		return
	}
	h.invalidate(r.Context(), galleryListCacheKey)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteGalleryImage handles DELETE /api/gallery/{id}.
func (h *Handler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, errorBody{Message: "Image not found"})
		return
	}

	_, persisted := writeOpWithFallback(r.Context(), "gallery image",
		primaryOrNoStore(h.store, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, h.store.DeleteGalleryImage(ctx, id)
		}),
		func() struct{} { return struct{}{} })
	if !persisted {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Gallery image deleted (mock mode)"})
		return
	}
	h.invalidate(r.Context(), galleryListCacheKey)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Gallery image deleted successfully"})
}
