package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"playlist-builder/internal/aggregator"
	"playlist-builder/internal/database"
	"playlist-builder/internal/playlist"
	"playlist-builder/internal/runner"
	"playlist-builder/internal/startup"
)

type fakeBuilder struct {
	mu     sync.Mutex
	result runner.Result
	err    error
	orders []aggregator.Order
	status runner.HealthStatus
}

func (f *fakeBuilder) BuildWith(_ context.Context, _ string, order aggregator.Order) (runner.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, order)
	return f.result, f.err
}

func (f *fakeBuilder) GetHealthStatus() runner.HealthStatus {
	return f.status
}

type fakeRuns struct {
	runs  []database.Run
	err   error
	limit int
}

func (f *fakeRuns) ListRuns(_ context.Context, limit int) ([]database.Run, error) {
	f.limit = limit
	return f.runs, f.err
}

func setupHandlers(t *testing.T, b Builder, runs RunStore) (*Handlers, string) {
	t.Helper()
	mediaDir := filepath.Join(t.TempDir(), "media")
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	cfg := &startup.Config{MediaDir: mediaDir, CombineOrder: aggregator.OrderDirectory}
	return New(b, runs, cfg), mediaDir
}

func serve(h *Handlers, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewRouter(h).ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func TestTriggerBuild(t *testing.T) {
	run := database.NewRun("/media", "directory", time.Now())
	run.Finish(time.Second, nil)
	b := &fakeBuilder{result: runner.Result{
		Run:     run,
		Summary: aggregator.Summary{Playlists: 2, Files: 3, Combined: 1},
		Report:  []string{"2 playlists created with a total of 3 files.", "1 combined playlists created."},
	}}
	h, _ := setupHandlers(t, b, &fakeRuns{})

	rec := serve(h, http.MethodPost, "/api/build")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}

	got := decode[runner.Result](t, rec)
	if got.Summary.Combined != 1 || got.Run == nil || got.Run.ID != run.ID {
		t.Errorf("response = %+v", got)
	}
	if len(b.orders) != 1 || b.orders[0] != aggregator.OrderDirectory {
		t.Errorf("orders = %v, want [directory]", b.orders)
	}
}

func TestTriggerBuildOrderParameter(t *testing.T) {
	b := &fakeBuilder{}
	h, _ := setupHandlers(t, b, &fakeRuns{})

	if rec := serve(h, http.MethodPost, "/api/build?order=filename"); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if b.orders[0] != aggregator.OrderFilename {
		t.Errorf("order = %v, want filename", b.orders[0])
	}

	if rec := serve(h, http.MethodPost, "/api/build?order=bogus"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestTriggerBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"busy", runner.ErrBusy, http.StatusConflict},
		{"no root", aggregator.ErrNoRoot, http.StatusBadRequest},
		{"filesystem", errors.New("permission denied"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupHandlers(t, &fakeBuilder{err: tt.err}, &fakeRuns{})
			rec := serve(h, http.MethodPost, "/api/build")
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			body := decode[map[string]interface{}](t, rec)
			if body["error"] == "" || body["error"] == nil {
				t.Errorf("response %v has no error", body)
			}
		})
	}
}

func TestTriggerBuildMethodNotAllowed(t *testing.T) {
	h, _ := setupHandlers(t, &fakeBuilder{}, &fakeRuns{})
	if rec := serve(h, http.MethodGet, "/api/build"); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestListRuns(t *testing.T) {
	runs := &fakeRuns{runs: []database.Run{{ID: "a"}, {ID: "b"}}}
	h, _ := setupHandlers(t, &fakeBuilder{}, runs)

	rec := serve(h, http.MethodGet, "/api/runs?limit=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decode[[]database.Run](t, rec); len(got) != 2 || got[0].ID != "a" {
		t.Errorf("runs = %+v", got)
	}
	if runs.limit != 2 {
		t.Errorf("limit = %d, want 2", runs.limit)
	}

	if rec := serve(h, http.MethodGet, "/api/runs?limit=x"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	serve(h, http.MethodGet, "/api/runs?limit=100000")
	if runs.limit != maxRunLimit {
		t.Errorf("limit = %d, want %d", runs.limit, maxRunLimit)
	}
}

func TestListRunsError(t *testing.T) {
	h, _ := setupHandlers(t, &fakeBuilder{}, &fakeRuns{err: errors.New("locked")})
	if rec := serve(h, http.MethodGet, "/api/runs"); rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	b := &fakeBuilder{status: runner.HealthStatus{Uptime: "1s", Order: "directory"}}
	h, mediaDir := setupHandlers(t, b, &fakeRuns{})

	rec := serve(h, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decode[HealthResponse](t, rec); got.Status != statusHealthy || !got.Ready {
		t.Errorf("health = %+v", got)
	}

	b.status.Building = true
	if got := decode[HealthResponse](t, serve(h, http.MethodGet, "/healthz")); got.Status != statusBuilding {
		t.Errorf("Status = %q, want %q", got.Status, statusBuilding)
	}

	if err := os.RemoveAll(mediaDir); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}
	rec = serve(h, http.MethodGet, "/health")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if rec := serve(h, http.MethodGet, "/readyz"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("readyz status = %d, want 503", rec.Code)
	}
}

func TestLivenessCheck(t *testing.T) {
	h, _ := setupHandlers(t, &fakeBuilder{}, &fakeRuns{})

	rec := serve(h, http.MethodGet, "/livez")
	if rec.Code != http.StatusOK || decode[map[string]string](t, rec)["status"] != "alive" {
		t.Errorf("GET /livez = %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(h, http.MethodHead, "/livez")
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Errorf("HEAD /livez = %d with %d body bytes", rec.Code, rec.Body.Len())
	}
}

func TestGetVersion(t *testing.T) {
	h, _ := setupHandlers(t, &fakeBuilder{}, &fakeRuns{})

	rec := serve(h, http.MethodGet, "/version")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decode[startup.BuildInfo](t, rec); got.Version != startup.Version {
		t.Errorf("Version = %q, want %q", got.Version, startup.Version)
	}
}

// TestBuildAndBrowsePlaylists drives a real build through the API.
func TestBuildAndBrowsePlaylists(t *testing.T) {
	h, mediaDir := setupHandlers(t, nil, &fakeRuns{})
	h.builder = runner.New(nil, mediaDir, aggregator.OrderDirectory)

	for _, name := range []string{"SeasonA/1.mp4", "SeasonA/2.mp4", "SeasonB/1.mp4"} {
		path := filepath.Join(mediaDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	rec := serve(h, http.MethodPost, "/api/build")
	if rec.Code != http.StatusOK {
		t.Fatalf("build status = %d (%s)", rec.Code, rec.Body.String())
	}
	result := decode[runner.Result](t, rec)
	if result.Summary.Playlists != 2 || result.Summary.Files != 3 || result.Summary.Combined != 1 {
		t.Errorf("Summary = %+v", result.Summary)
	}

	listing := decode[PlaylistListing](t, serve(h, http.MethodGet, "/api/playlists"))
	if len(listing.Playlists) != 2 || listing.Playlists[0].Path != "SeasonA.xspf" || listing.Playlists[0].Tracks != 2 {
		t.Errorf("playlists = %+v", listing.Playlists)
	}
	if listing.Root == nil || listing.Root.Tracks != 3 {
		t.Errorf("root = %+v, want 3 tracks", listing.Root)
	}

	rec = serve(h, http.MethodGet, "/api/playlist/SeasonA.xspf")
	if rec.Code != http.StatusOK {
		t.Fatalf("playlist status = %d", rec.Code)
	}
	summary := decode[playlist.Summary](t, rec)
	if summary.Count != 2 || summary.Title != playlist.DefaultTitle {
		t.Errorf("summary = %+v", summary)
	}
	if !summary.Items[0].Exists || summary.Items[0].Name != "1.mp4" {
		t.Errorf("items[0] = %+v", summary.Items[0])
	}
}

func TestGetPlaylistErrors(t *testing.T) {
	h, mediaDir := setupHandlers(t, &fakeBuilder{}, &fakeRuns{})
	if err := os.WriteFile(filepath.Join(mediaDir, "bad.xspf"), []byte("<playlist>"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		target string
		want   int
	}{
		{"/api/playlist/missing.xspf", http.StatusNotFound},
		{"/api/playlist/bad.xspf", http.StatusUnprocessableEntity},
		{"/api/playlist/notes.txt", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if rec := serve(h, http.MethodGet, tt.target); rec.Code != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.target, rec.Code, tt.want)
		}
	}
}

func TestResolvePlaylistPath(t *testing.T) {
	h, mediaDir := setupHandlers(t, &fakeBuilder{}, &fakeRuns{})

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"A/B.xspf", filepath.Join(mediaDir, "A", "B.xspf"), true},
		{"../outside.xspf", filepath.Join(mediaDir, "outside.xspf"), true},
		{"A/../../../etc/x.xspf", filepath.Join(mediaDir, "etc", "x.xspf"), true},
		{"", "", false},
		{"A/B.m3u", "", false},
		{`A\B.xspf`, "", false},
	}
	for _, tt := range tests {
		got, ok := h.resolvePlaylistPath(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("resolvePlaylistPath(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
