package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ruslanamed/clinic-go/internal/middleware"
)

// Routes builds the API router with the full middleware stack.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(middleware.Recoverer(h.cfg.IsDevelopment()))
	r.Use(middleware.CORS(h.cfg.CORSOrigins))

	r.Get("/health", h.Health("Backend is running successfully!"))
	r.Get("/api/health", h.Health("API is working!"))

	loginLimiter := middleware.NewIPRateLimiter(1, 5)

	r.Route("/api", func(r chi.Router) {
		r.With(loginLimiter.Middleware()).Post("/auth/login", h.Login)
		r.Get("/auth/me", h.Me)

		r.Get("/articles", h.ListArticles)
		r.Get("/articles/{id}", h.GetArticle)
		r.Post("/articles", h.CreateArticle)
		r.Put("/articles/{id}", h.UpdateArticle)
		r.Delete("/articles/{id}", h.DeleteArticle)

		r.Get("/gallery", h.ListGallery)
		r.Get("/gallery/{id}", h.GetGalleryImage)
		r.Post("/gallery", h.CreateGalleryImage)
		r.Put("/gallery/{id}", h.UpdateGalleryImage)
		r.Delete("/gallery/{id}", h.DeleteGalleryImage)

		r.Post("/contact", h.Contact)

		r.Post("/upload/single", h.UploadSingle)
		r.Post("/upload/multiple", h.UploadMultiple)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errorBody{Message: "Route not found", Path: r.URL.Path})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errorBody{Message: "Route not found", Path: r.URL.Path})
	})

	return r
}
