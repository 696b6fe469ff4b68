package api

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

// writeJSON encodes v as the response body with the given status. The
// stdlib encoder leaves non-ASCII text as-is, which the API relies on
// for fixture data.
func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// writeError writes a structured error body: {"error": "..."}.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, map[string]string{"error": message}, status)
}

func notFound(w http.ResponseWriter) {
	writeError(w, "not found", http.StatusNotFound)
}
