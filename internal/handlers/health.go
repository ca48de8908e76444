package handlers

import (
	"net/http"
	"runtime"

	"playlist-builder/internal/database"
	"playlist-builder/internal/filesystem"
	"playlist-builder/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusBuilding = "building"
	statusDegraded = "degraded"
)

// HealthResponse contains the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Ready    bool   `json:"ready"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Building bool   `json:"building"`
	MediaDir string `json:"mediaDir"`
	Order    string `json:"order"`

	LastRun *database.Run `json:"lastRun,omitempty"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// HealthCheck returns the health status of the service
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	status := h.builder.GetHealthStatus()

	response := HealthResponse{
		Status:       statusHealthy,
		Ready:        h.mediaDirAvailable(),
		Version:      startup.Version,
		Uptime:       status.Uptime,
		Building:     status.Building,
		MediaDir:     status.MediaDir,
		Order:        status.Order,
		LastRun:      status.LastRun,
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	}

	switch {
	case !response.Ready:
		response.Status = statusDegraded
	case status.Building:
		response.Status = statusBuilding
	case status.LastRun != nil && status.LastRun.Status == database.StatusError:
		response.Status = statusDegraded
	}

	w.Header().Set("Content-Type", "application/json")

	if !response.Ready {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// For HEAD requests, only send headers (no body)
	if r.Method != http.MethodHead {
		writeJSON(w, map[string]string{
			"status": "alive",
		})
	}
}

// ReadinessCheck returns 200 only when the media directory can be read
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if h.mediaDirAvailable() {
		w.WriteHeader(http.StatusOK)
		writeJSON(w, map[string]string{
			"status": "ready",
		})
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		writeJSON(w, map[string]string{
			"status": "not_ready",
		})
	}
}

func (h *Handlers) mediaDirAvailable() bool {
	info, err := filesystem.StatWithRetry(h.mediaDir, filesystem.DefaultRetryConfig())
	return err == nil && info.IsDir()
}
