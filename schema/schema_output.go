package schema

// EnrichedMarker adds presentation data to a Marker.
type EnrichedMarker struct {
	Label string `json:"label"`
	Marker
}

// EnrichedLayout is a ChartLayout with graded markers, used by JSON output and MCP tools.
type EnrichedLayout struct {
	ChartLayout
	MeanScore float64          `json:"mean_score"`
	Graded    []EnrichedMarker `json:"graded"`
}

// EnrichLayout adds a grade label to every marker of a layout.
func EnrichLayout(l ChartLayout) EnrichedLayout {
	graded := make([]EnrichedMarker, len(l.Markers))
	for i, m := range l.Markers {
		graded[i] = EnrichedMarker{
			Label:  GetPlainLabel(m.Score),
			Marker: m,
		}
	}
	return EnrichedLayout{
		ChartLayout: l,
		MeanScore:   l.MeanScore(),
		Graded:      graded,
	}
}

// ChartResult is a built chart together with how it was resolved.
type ChartResult struct {
	Preset  string      `json:"preset"`
	RunUUID string      `json:"run_uuid,omitempty"` // Set when the chart was recorded in history
	Ignored []string    `json:"ignored_keys,omitempty"`
	Layout  ChartLayout `json:"layout"`
}
