package handlers

import (
	"net/http"
	"strconv"

	"playlist-builder/internal/logging"
)

const maxRunLimit = 500

// ListRuns returns the recorded runs, newest first. "limit" caps the count.
func (h *Handlers) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeJSONError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxRunLimit)
	}

	runs, err := h.runs.ListRuns(r.Context(), limit)
	if err != nil {
		logging.Error("Failed to list runs: %v", err)
		writeJSONError(w, "Failed to list runs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, runs)
}
