package schema

import (
	"sort"
	"strings"
)

// LineBreakMarker splits a display name into stacked label lines.
const LineBreakMarker = "\n"

// ScoreSet maps a category name to its score in [0, 100].
type ScoreSet map[string]float64

// Category is one named axis of a chart.
type Category struct {
	Key     string   `json:"key" mapstructure:"key"`
	Display string   `json:"display,omitempty" mapstructure:"display"` // May contain LineBreakMarker
	Aliases []string `json:"aliases,omitempty" mapstructure:"aliases"` // Alternate score keys that resolve to Key
}

// Label returns the display name, falling back to the key.
func (c Category) Label() string {
	if c.Display != "" {
		return c.Display
	}
	return c.Key
}

// CategorySet is an ordered, reusable list of categories for one chart type.
type CategorySet struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Categories  []Category `json:"categories"`
}

// Keys returns the category keys in chart order.
func (cs CategorySet) Keys() []string {
	keys := make([]string, len(cs.Categories))
	for i, c := range cs.Categories {
		keys[i] = c.Key
	}
	return keys
}

// LineBreaks returns key -> label lines for every category whose display name differs from its key.
func (cs CategorySet) LineBreaks() map[string][]string {
	out := make(map[string][]string)
	for _, c := range cs.Categories {
		if c.Display == "" || c.Display == c.Key {
			continue
		}
		out[c.Key] = strings.Split(c.Display, LineBreakMarker)
	}
	return out
}

// Built-in preset names.
const (
	PresetV1 = "v1"
	PresetV2 = "v2"
)

// DefaultPreset is used when neither the config nor the score file names one.
const DefaultPreset = PresetV2

// BuiltinPresets returns fresh copies of the category sets shipped with radar.
// Version 1 and 2 mirror the two photo analysis models of the scoring backend.
func BuiltinPresets() map[string]CategorySet {
	return map[string]CategorySet{
		PresetV1: {
			Name:        PresetV1,
			Description: "Technical photo analysis (model v1)",
			Categories: []Category{
				{Key: "composition", Display: "Composition", Aliases: []string{"구도"}},
				{Key: "noise", Display: "Noise", Aliases: []string{"노이즈"}},
				{Key: "exposure", Display: "Exposure", Aliases: []string{"노출"}},
				{Key: "dynamic_range", Display: "Dynamic\nRange", Aliases: []string{"다이나믹 레인지", "dynamic range"}},
				{Key: "sharpness", Display: "Sharpness", Aliases: []string{"선명도"}},
				{Key: "white_balance", Display: "White Balance", Aliases: []string{"화이트밸런스", "white balance"}},
			},
		},
		PresetV2: {
			Name:        PresetV2,
			Description: "Aesthetic photo analysis (model v2)",
			Categories: []Category{
				{Key: "composition", Display: "Composition", Aliases: []string{"구도"}},
				{Key: "subject", Display: "Subject", Aliases: []string{"주제"}},
				{Key: "exposure", Display: "Exposure", Aliases: []string{"노출"}},
				{Key: "aesthetics", Display: "Aesthetics", Aliases: []string{"미적감각"}},
				{Key: "sharpness", Display: "Sharpness", Aliases: []string{"선명도"}},
				{Key: "color", Display: "Color", Aliases: []string{"색감"}},
			},
		},
	}
}

// PresetForVersion returns the preset name used by a scoring model version.
func PresetForVersion(version int) string {
	switch version {
	case 1:
		return PresetV1
	case 2:
		return PresetV2
	default:
		return ""
	}
}

// SortedPresetNames returns the names of the given presets in lexical order.
func SortedPresetNames(presets map[string]CategorySet) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScoreInput is the decoded content of a score file.
// A file may also be a flat name -> score map, in which case only Scores is set.
type ScoreInput struct {
	Version int      `json:"version,omitempty" yaml:"version"`
	Preset  string   `json:"preset,omitempty" yaml:"preset"`
	Title   string   `json:"title,omitempty" yaml:"title"`
	Scores  ScoreSet `json:"scores" yaml:"scores"`
}
