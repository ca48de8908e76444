package metrics

import (
	"time"

	"playlist-builder/internal/logging"
)

// StatsProvider interface for collecting stats
type StatsProvider interface {
	GetStats() Stats
}

// Stats summarizes the run history.
type Stats struct {
	TotalRuns     int
	LastRunAt     time.Time
	LastPlaylists int
	LastFiles     int
	LastCombined  int
}

// Collector periodically collects and updates metrics
type Collector struct {
	statsProvider StatsProvider
	interval      time.Duration
	stopChan      chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()

	HistoryRunsRecorded.Set(float64(stats.TotalRuns))
	if !stats.LastRunAt.IsZero() {
		LastRunTimestamp.Set(float64(stats.LastRunAt.Unix()))
	}
	LastRunOutput.WithLabelValues("playlists").Set(float64(stats.LastPlaylists))
	LastRunOutput.WithLabelValues("files").Set(float64(stats.LastFiles))
	LastRunOutput.WithLabelValues("combined").Set(float64(stats.LastCombined))

	logging.Debug("Metrics collected: runs=%d, last playlists=%d, files=%d, combined=%d",
		stats.TotalRuns, stats.LastPlaylists, stats.LastFiles, stats.LastCombined)
}
