package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichLayout(t *testing.T) {
	l := ChartLayout{
		Categories: []string{"a", "b"},
		Markers: []Marker{
			{Index: 0, Category: "a", Score: 90},
			{Index: 1, Category: "b", Score: 30},
		},
	}

	enriched := EnrichLayout(l)
	require.Len(t, enriched.Graded, 2)
	assert.Equal(t, "Excellent", enriched.Graded[0].Label)
	assert.Equal(t, "Poor", enriched.Graded[1].Label)
	assert.InDelta(t, 60.0, enriched.MeanScore, 1e-9)

	data, err := json.Marshal(enriched)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "categories", "embedded layout fields should be flattened")
	assert.Contains(t, decoded, "graded")
	assert.Equal(t, 60.0, decoded["mean_score"])
}

func TestOutputModeIsArtifact(t *testing.T) {
	assert.True(t, SVGOut.IsArtifact())
	assert.True(t, PNGOut.IsArtifact())
	assert.False(t, TextOut.IsArtifact())
	assert.False(t, JSONOut.IsArtifact())
}
