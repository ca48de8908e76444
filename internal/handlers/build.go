package handlers

import (
	"errors"
	"net/http"

	"playlist-builder/internal/aggregator"
	"playlist-builder/internal/logging"
	"playlist-builder/internal/runner"
)

// TriggerBuild runs a full build of the media directory and returns its
// result. The optional "order" query parameter overrides the configured
// combine order.
func (h *Handlers) TriggerBuild(w http.ResponseWriter, r *http.Request) {
	order := h.order
	if s := r.URL.Query().Get("order"); s != "" {
		parsed, err := aggregator.ParseOrder(s)
		if err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		order = parsed
	}

	result, err := h.builder.BuildWith(r.Context(), h.mediaDir, order)
	switch {
	case errors.Is(err, runner.ErrBusy):
		writeJSONError(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, aggregator.ErrNoRoot), errors.Is(err, aggregator.ErrNotDirectory):
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		logging.Error("Build request failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(w, map[string]interface{}{
			"error": err.Error(),
			"run":   result.Run,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, result)
}
