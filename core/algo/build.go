package algo

import "github.com/huangsam/radar/schema"

// Build validates the inputs and computes the full chart geometry.
// Nothing is returned on error; a chart is either complete or absent.
func Build(opts schema.ChartOptions, categories []string, scores schema.ScoreSet, lineBreaks map[string][]string) (schema.ChartLayout, error) {
	if err := Validate(opts, categories, scores); err != nil {
		return schema.ChartLayout{}, err
	}

	ordered := make([]string, len(categories))
	copy(ordered, categories)

	return schema.ChartLayout{
		Options:    opts,
		Categories: ordered,
		Grid:       GridRings(opts, len(ordered)),
		Axes:       AxisLines(opts, ordered),
		Polygon:    DataPolygon(opts, scores, ordered),
		Markers:    Markers(opts, scores, ordered),
		Labels:     Labels(opts, scores, ordered, lineBreaks),
	}, nil
}
