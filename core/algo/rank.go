package algo

import (
	"sort"

	"github.com/huangsam/radar/schema"
)

// RankMarkers returns a copy of the markers sorted by score in descending order,
// keeping axis order for ties, and trimmed to 'limit' entries when limit > 0.
func RankMarkers(markers []schema.Marker, limit int) []schema.Marker {
	ranked := make([]schema.Marker, len(markers))
	copy(ranked, markers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}
