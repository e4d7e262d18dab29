package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recoverer converts panics into a 500 JSON error response. Stack details
// are included only when includeDetails is true (non-production mode).
func Recoverer(includeDetails bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := string(debug.Stack())
				slog.Error("panic recovered", "panic", rec, "path", r.URL.Path, "stack", stack)

				body := map[string]any{
					"message": "Internal Server Error",
				}
				if includeDetails {
					body["details"] = stack
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]any{"error": body})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
