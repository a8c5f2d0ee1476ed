package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/artpieces/backend/internal/domain"
)

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeCommand sends the status envelope for a mutation outcome. The
// envelope carries the outcome; HTTP stays 200 for expected failures
// so clients branch on the status code inside the body.
func writeCommand(w http.ResponseWriter, payload any, err error) {
	if err != nil {
		env := domain.Fail(err)
		if env.Status == domain.StatusInternal {
			slog.Error("command failed", "error", err)
		}
		writeJSON(w, http.StatusOK, env)
		return
	}
	writeJSON(w, http.StatusOK, domain.OK(payload))
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
