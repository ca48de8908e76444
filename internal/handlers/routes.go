package handlers

import (
	"github.com/gorilla/mux"
)

// NewRouter registers every API route on a new router.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.HealthCheck).Methods("GET").Name("health")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/build", h.TriggerBuild).Methods("POST")
	api.HandleFunc("/runs", h.ListRuns).Methods("GET")
	api.HandleFunc("/playlists", h.ListPlaylists).Methods("GET")
	api.HandleFunc("/playlist/{path:.+}", h.GetPlaylist).Methods("GET")

	return r
}
