package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playlist-builder/internal/database"
	"playlist-builder/internal/filesystem"
	"playlist-builder/internal/handlers"
	"playlist-builder/internal/logging"
	"playlist-builder/internal/metrics"
	"playlist-builder/internal/middleware"
	"playlist-builder/internal/runner"
	"playlist-builder/internal/startup"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const statsInterval = time.Minute

func main() {
	startTime := time.Now()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Metrics must be wired before the first filesystem access
	metrics.InitializeMetrics()
	metrics.SetAppInfo(startup.Version, startup.Commit, startup.GoVersion)
	filesystem.SetObserver(metrics.NewFilesystemObserver())
	filesystem.SetDefaultVolumeResolver(filesystem.NewVolumeResolver(map[string]string{
		"media":    config.MediaDir,
		"database": config.DatabaseDir,
	}))

	// Initialize database
	dbStart := time.Now()
	db, err := database.New(context.Background(), config.DatabasePath)
	if err != nil {
		startup.LogFatal("Failed to initialize database: %v", err)
	}
	startup.LogDatabaseInit(time.Since(dbStart))

	collector := metrics.NewCollector(db, statsInterval)
	collector.Start()

	// Initialize runner
	startup.LogRunnerInit(config.MediaDir, config.CombineOrder)
	run := runner.New(db, config.MediaDir, config.CombineOrder)
	run.SetOnComplete(logReport)

	// Initialize handlers
	h := handlers.New(run, db, config)
	router := handlers.NewRouter(h)

	// Log routes dynamically
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	srv := newServer(config, wrapHandler(router, config))

	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsSrv = newMetricsServer(config.MetricsPort)
		go func() {
			if err := metricsSrv.ListenAndServe(); err != http.ErrServerClosed {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	// Start graceful shutdown handler
	go handleShutdown(srv, metricsSrv, collector, db)

	// Start server
	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}
}

// wrapHandler applies the logging and metrics middleware to h.
func wrapHandler(h http.Handler, config *startup.Config) http.Handler {
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	logged := middleware.Logger(loggingConfig)(h)

	return middleware.Metrics(middleware.DefaultMetricsConfig())(logged)
}

func newServer(config *startup.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + config.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Builds of large trees run inside the request
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}
}

func newMetricsServer(port string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func logReport(result runner.Result) {
	for _, line := range result.Report {
		logging.Info("%s", line)
	}
}

func handleShutdown(srv, metricsSrv *http.Server, collector *metrics.Collector, db *database.Database) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	startup.LogShutdownStep("Stopping stats collector")
	collector.Stop()
	startup.LogShutdownStepComplete("Stats collector stopped")

	startup.LogShutdownStep("Closing database")
	if err := db.Close(); err != nil {
		logging.Warn("Database close error: %v", err)
	} else {
		startup.LogShutdownStepComplete("Database closed")
	}

	startup.LogShutdownComplete()
}
