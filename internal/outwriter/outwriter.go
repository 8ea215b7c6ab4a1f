// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteLayout prints a chart layout using the configured data format.
// Rows are the markers in table order.
func (ow *OutWriter) WriteLayout(result schema.ChartResult, rows []schema.Marker, cfg *contract.Config, duration time.Duration) error {
	return WriteLayoutResults(result, rows, cfg, duration)
}

// WriteArtifact writes rendered SVG or PNG bytes.
func (ow *OutWriter) WriteArtifact(data []byte, cfg *contract.Config) error {
	return WriteArtifact(data, cfg)
}

// WritePresets prints the available category sets.
func (ow *OutWriter) WritePresets(presets map[string]schema.CategorySet, cfg *contract.Config) error {
	return WritePresetResults(presets, cfg)
}
