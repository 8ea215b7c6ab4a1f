// Package parquet provides data structures and functions for exporting radar
// chart history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/radar/schema"
	"github.com/parquet-go/parquet-go"
)

// ChartRun represents a single rendered chart with metadata.
// This struct maps to the radar_chart_runs database table.
type ChartRun struct {
	// RunID is the unique identifier for this chart run
	RunID int64 `parquet:"run_id,snappy"`

	// RunUUID is the globally unique identifier assigned at record time
	RunUUID string `parquet:"run_uuid,snappy"`

	// CreatedAt is when the chart was built (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`

	// Preset is the category set the chart was built from
	Preset string `parquet:"preset,snappy"`

	// Title is the optional chart title (nullable)
	Title *string `parquet:"title,optional,snappy"`

	// AxisCount is the number of axes on the chart
	AxisCount int32 `parquet:"axis_count,snappy"`

	// MeanScore is the average of all plotted scores
	MeanScore float64 `parquet:"mean_score,snappy"`

	// ConfigParams contains the JSON-encoded chart options (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// ChartScore represents one plotted axis of a chart run.
// This struct maps to the radar_chart_scores database table.
type ChartScore struct {
	RunID     int64   `parquet:"run_id,snappy"`
	AxisIndex int32   `parquet:"axis_index,snappy"`
	Category  string  `parquet:"category,snappy,dict"`
	Score     float64 `parquet:"score,snappy"`
	X         float64 `parquet:"x,snappy"`
	Y         float64 `parquet:"y,snappy"`
}

// writeParquet writes rows to a Parquet file whose schema is inferred from T's struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes the footer, so its error matters
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteChartRunsParquet writes a slice of ChartRun structs to a Parquet file.
func WriteChartRunsParquet(data []ChartRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteChartScoresParquet writes a slice of ChartScore structs to a Parquet file.
func WriteChartScoresParquet(data []ChartScore, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertChartRunRecords converts schema.ChartRunRecord to ChartRun for Parquet export.
func ConvertChartRunRecords(records []schema.ChartRunRecord) []ChartRun {
	result := make([]ChartRun, len(records))
	for i, record := range records {
		result[i] = ChartRun{
			RunID:        record.RunID,
			RunUUID:      record.RunUUID,
			CreatedAt:    record.CreatedAt,
			Preset:       record.Preset,
			Title:        record.Title,
			AxisCount:    record.AxisCount,
			MeanScore:    record.MeanScore,
			ConfigParams: record.ConfigParams,
		}
	}
	return result
}

// ConvertChartScoreRecords converts schema.ChartScoreRecord to ChartScore for Parquet export.
func ConvertChartScoreRecords(records []schema.ChartScoreRecord) []ChartScore {
	result := make([]ChartScore, len(records))
	for i, record := range records {
		result[i] = ChartScore(record)
	}
	return result
}
