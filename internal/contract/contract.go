// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/huangsam/radar/schema"

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetRenderStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for recording rendered charts.
type HistoryStore interface {
	// RecordChart stores one chart run with all of its plotted scores.
	// It returns the numeric run ID and the run UUID.
	RecordChart(record schema.ChartRecord) (int64, string, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllChartRuns returns every recorded run ordered by run ID
	GetAllChartRuns() ([]schema.ChartRunRecord, error)

	// GetAllChartScores returns every recorded score ordered by run ID and axis
	GetAllChartScores() ([]schema.ChartScoreRecord, error)

	// Close closes the underlying connection
	Close() error
}
