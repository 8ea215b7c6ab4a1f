package iocache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/radar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHistoryStore(t *testing.T, store *MockHistoryStore) {
	t.Helper()
	prev := Manager
	Manager = &CacheStoreManager{history: store}
	t.Cleanup(func() { Manager = prev })
}

func TestExecuteHistoryExport(t *testing.T) {
	t.Run("requires output file", func(t *testing.T) {
		assert.ErrorContains(t, ExecuteHistoryExport(""), "--output-file is required")
	})

	t.Run("requires history store", func(t *testing.T) {
		prev := Manager
		Manager = &CacheStoreManager{}
		defer func() { Manager = prev }()
		assert.ErrorContains(t, ExecuteHistoryExport("out"), "history store is not initialized")
	})

	t.Run("empty history", func(t *testing.T) {
		store := &MockHistoryStore{}
		store.On("GetStatus").Return(schema.HistoryStatus{Backend: "sqlite", Connected: true}, nil)
		withHistoryStore(t, store)

		assert.ErrorContains(t, ExecuteHistoryExport("out"), "no chart history found")
		store.AssertExpectations(t)
	})

	t.Run("status error", func(t *testing.T) {
		store := &MockHistoryStore{}
		store.On("GetStatus").Return(schema.HistoryStatus{}, errors.New("boom"))
		withHistoryStore(t, store)

		assert.ErrorContains(t, ExecuteHistoryExport("out"), "boom")
	})

	t.Run("writes both files", func(t *testing.T) {
		store := &MockHistoryStore{}
		store.On("GetStatus").Return(schema.HistoryStatus{Backend: "sqlite", Connected: true, TotalRuns: 1, TotalScores: 2}, nil)
		store.On("GetAllChartRuns").Return([]schema.ChartRunRecord{
			{RunID: 1, RunUUID: "a", CreatedAt: time.Now(), Preset: "v2", AxisCount: 2, MeanScore: 50},
		}, nil)
		store.On("GetAllChartScores").Return([]schema.ChartScoreRecord{
			{RunID: 1, AxisIndex: 0, Category: "Subject", Score: 40},
			{RunID: 1, AxisIndex: 1, Category: "Color", Score: 60},
		}, nil)
		withHistoryStore(t, store)

		base := filepath.Join(t.TempDir(), "history")
		require.NoError(t, ExecuteHistoryExport(base))

		for _, suffix := range []string{".chart_runs.parquet", ".chart_scores.parquet"} {
			info, err := os.Stat(base + suffix)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		}
		store.AssertExpectations(t)
	})
}
