package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteLayoutResults outputs a chart layout, dispatching based on the output format configured.
func WriteLayoutResults(result schema.ChartResult, rows []schema.Marker, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtPoint := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONLayout(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVLayout(w, result.Layout, rows, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.SVGOut, schema.PNGOut:
		return fmt.Errorf("%s output is a rendered chart; use the render command", cfg.Output)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLayoutTable(w, result, rows, cfg, fmtFloat, fmtPoint, duration)
		}, "Wrote table")
	}
	return nil
}

// writeLayoutTable generates and writes the human-readable table.
func writeLayoutTable(w io.Writer, result schema.ChartResult, rows []schema.Marker, cfg *contract.Config, fmtFloat func(float64) string, fmtPoint func(schema.Point) string, duration time.Duration) error {
	layout := result.Layout
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Axis", "Category", "Score", "Grade", "Point", "Label At", "Anchor"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTableLabelWidth(cfg)
	var data [][]string
	for _, m := range rows {
		grade := schema.GetPlainLabel(m.Score)
		if cfg.UseColors {
			grade = contract.GetColorLabel(m.Score)
		}
		row := []string{
			strconv.Itoa(m.Index),
			contract.TruncateText(m.Category, maxWidth),
			fmtFloat(m.Score),
			grade,
			fmtPoint(m.Point),
		}
		if m.Index < len(layout.Labels) {
			label := layout.Labels[m.Index]
			row = append(row,
				fmtPoint(label.Point),
				string(label.Title.Anchor),
			)
		} else {
			row = append(row, "", "")
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Preset: %s | Axes: %d | Mean score: %s (%s)\n",
		result.Preset, len(layout.Categories), fmtFloat(layout.MeanScore()), schema.GetPlainLabel(layout.MeanScore())); err != nil {
		return err
	}
	if len(result.Ignored) > 0 {
		if _, err := fmt.Fprintf(w, "Ignored score keys: %s\n", strings.Join(result.Ignored, ", ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Chart built in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVLayout writes one row per axis.
func writeCSVLayout(w io.Writer, layout schema.ChartLayout, rows []schema.Marker, fmtFloat func(float64) string) error {
	header := []string{"axis", "category", "score", "grade", "x", "y", "label_x", "label_y", "title_anchor", "score_anchor", "label_lines"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range rows {
			if m.Index >= len(layout.Labels) {
				return errors.New("layout labels do not match markers")
			}
			label := layout.Labels[m.Index]
			rec := []string{
				strconv.Itoa(m.Index),
				m.Category,
				fmtFloat(m.Score),
				schema.GetPlainLabel(m.Score),
				fmtFloat(m.Point.X),
				fmtFloat(m.Point.Y),
				fmtFloat(label.Point.X),
				fmtFloat(label.Point.Y),
				string(label.Title.Anchor),
				string(label.Score.Anchor),
				strings.Join(label.Lines, "|"),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONLayout writes the graded layout in JSON format.
func writeJSONLayout(w io.Writer, result schema.ChartResult) error {
	type JSONChartResult struct {
		Preset  string   `json:"preset"`
		RunUUID string   `json:"run_uuid,omitempty"`
		Ignored []string `json:"ignored_keys,omitempty"`
		schema.EnrichedLayout
	}

	return writeJSON(w, JSONChartResult{
		Preset:         result.Preset,
		RunUUID:        result.RunUUID,
		Ignored:        result.Ignored,
		EnrichedLayout: schema.EnrichLayout(result.Layout),
	})
}
