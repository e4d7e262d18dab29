package handler

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Server    string `json:"server"`
	Database  string `json:"database"`
	Message   string `json:"message"`
}

// Health handles GET /health and GET /api/health. The database field
// reflects the last background probe, not an inline ping, so the endpoint
// stays fast while the pool is timing out.
func (h *Handler) Health(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		database := "disconnected"
		if h.monitor.Connected() {
			database = "connected"
		}
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Server:    "postgres-backend",
			Database:  database,
			Message:   message,
		})
	}
}
