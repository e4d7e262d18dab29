package handler

import "net/http"

// File storage is not wired up. The upload endpoints answer with fixed
// stock URLs so the admin panel's upload flow completes end to end.

type uploadedFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

var mockUploads = []uploadedFile{
	{
		URL:      "https://images.unsplash.com/photo-1551076805-e1869033e561?w=800&h=600&fit=crop",
		Filename: "uploaded-file-1.jpg",
	},
	{
		URL:      "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=800&h=600&fit=crop",
		Filename: "uploaded-file-2.jpg",
	},
}

// UploadSingle handles POST /api/upload/single.
func (h *Handler) UploadSingle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "File upload endpoint available",
		"url":      mockUploads[0].URL,
		"filename": "uploaded-file.jpg",
	})
}

// UploadMultiple handles POST /api/upload/multiple.
func (h *Handler) UploadMultiple(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Multiple files upload endpoint available",
		"files":   mockUploads,
	})
}
