package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/schema"

	"github.com/olekukonko/tablewriter"
)

// WritePresetResults outputs the category sets, dispatching based on the output format configured.
func WritePresetResults(presets map[string]schema.CategorySet, cfg *contract.Config) error {
	names := schema.SortedPresetNames(presets)
	sets := make([]schema.CategorySet, len(names))
	for i, name := range names {
		sets[i] = presets[name]
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, sets)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVPresets(w, sets)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePresetTable(w, sets, cfg.Preset)
		}, "Wrote table")
	}
}

// writePresetTable lists presets with their categories in chart order.
func writePresetTable(w io.Writer, sets []schema.CategorySet, selected string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Preset", "Axes", "Categories", "Description"})

	var data [][]string
	for _, set := range sets {
		name := set.Name
		if name == selected || (selected == "" && name == schema.DefaultPreset) {
			name += " *"
		}
		labels := make([]string, len(set.Categories))
		for i, c := range set.Categories {
			labels[i] = strings.ReplaceAll(c.Label(), schema.LineBreakMarker, " ")
		}
		data = append(data, []string{
			name,
			fmt.Sprintf("%d", len(set.Categories)),
			strings.Join(labels, ", "),
			set.Description,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "* active preset")
	return err
}

// writeCSVPresets writes one row per category of every preset.
func writeCSVPresets(w io.Writer, sets []schema.CategorySet) error {
	header := []string{"preset", "axis", "key", "display", "aliases"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, set := range sets {
			for i, c := range set.Categories {
				rec := []string{
					set.Name,
					fmt.Sprintf("%d", i),
					c.Key,
					strings.ReplaceAll(c.Label(), schema.LineBreakMarker, " "),
					strings.Join(c.Aliases, "|"),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
