package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/schema"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned when a chart names a category set that does not exist.
var ErrUnknownPreset = errors.New("unknown preset")

// customPreset names a chart whose categories came from --categories.
const customPreset = "custom"

// ChartInput is a chart request with its category order and scores fully resolved.
type ChartInput struct {
	Preset     string
	Title      string
	Categories []string
	Scores     schema.ScoreSet
	LineBreaks map[string][]string
	Ignored    []string // Score keys that matched no category or were shadowed by another key
}

// LoadScoreInput reads a score file from disk, or stdin when path is contract.StdinPath.
// An empty path yields an empty input.
func LoadScoreInput(path string) (schema.ScoreInput, error) {
	switch path {
	case "":
		return schema.ScoreInput{}, nil
	case contract.StdinPath:
		return DecodeScoreInput(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return schema.ScoreInput{}, fmt.Errorf("failed to open score file: %w", err)
	}
	defer func() { _ = file.Close() }()

	input, err := DecodeScoreInput(file)
	if err != nil {
		return schema.ScoreInput{}, fmt.Errorf("%s: %w", path, err)
	}
	return input, nil
}

// DecodeScoreInput decodes YAML or JSON score data. The document is either a flat
// name -> score map or a structured object with a scores section.
func DecodeScoreInput(r io.Reader) (schema.ScoreInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return schema.ScoreInput{}, fmt.Errorf("failed to read scores: %w", err)
	}

	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return schema.ScoreInput{}, fmt.Errorf("failed to parse scores: %w", err)
	}

	if _, ok := probe["scores"]; ok {
		var input schema.ScoreInput
		if err := yaml.Unmarshal(data, &input); err != nil {
			return schema.ScoreInput{}, fmt.Errorf("failed to parse structured scores: %w", err)
		}
		return input, nil
	}

	var flat schema.ScoreSet
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return schema.ScoreInput{}, fmt.Errorf("scores must map names to numbers: %w", err)
	}
	return schema.ScoreInput{Scores: flat}, nil
}

// resolvePreset picks the category set in order: config, score file preset,
// score file version, default.
func resolvePreset(cfg *contract.Config, input schema.ScoreInput) (schema.CategorySet, error) {
	presets := cfg.Presets
	if presets == nil {
		presets = schema.BuiltinPresets()
	}

	name := cfg.Preset
	if name == "" {
		name = strings.ToLower(strings.TrimSpace(input.Preset))
	}
	if name == "" && input.Version != 0 {
		name = schema.PresetForVersion(input.Version)
		if name == "" {
			return schema.CategorySet{}, fmt.Errorf("%w: no preset for score version %d", ErrUnknownPreset, input.Version)
		}
	}
	if name == "" {
		name = schema.DefaultPreset
	}

	set, ok := presets[name]
	if !ok {
		return schema.CategorySet{}, fmt.Errorf("%w: %s (available: %s)", ErrUnknownPreset, name, strings.Join(schema.SortedPresetNames(presets), ", "))
	}
	return set, nil
}

// categoryIndex maps lowercased keys, display names and aliases to canonical keys.
type categoryIndex struct {
	keys    map[string]struct{}
	lookups map[string]string
}

func newCategoryIndex(categories []schema.Category) categoryIndex {
	idx := categoryIndex{
		keys:    make(map[string]struct{}, len(categories)),
		lookups: make(map[string]string),
	}
	for _, c := range categories {
		idx.keys[c.Key] = struct{}{}
	}
	// Aliases first so keys and display names win on conflict
	for _, c := range categories {
		for _, alias := range c.Aliases {
			idx.lookups[normalizeName(alias)] = c.Key
		}
	}
	for _, c := range categories {
		idx.lookups[normalizeName(strings.ReplaceAll(c.Label(), schema.LineBreakMarker, " "))] = c.Key
		idx.lookups[normalizeName(c.Key)] = c.Key
	}
	return idx
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// resolve returns the canonical key for a score name.
func (idx categoryIndex) resolve(name string) (string, bool) {
	if _, ok := idx.keys[name]; ok {
		return name, true
	}
	key, ok := idx.lookups[normalizeName(name)]
	return key, ok
}

// applyScores copies scores onto dst under their canonical keys. Exact key
// matches take precedence over aliases of the same category, and among
// aliases the first in sorted order wins. Shadowed names land in ignored.
// With override unset, keys already in dst are left alone.
func (idx categoryIndex) applyScores(dst schema.ScoreSet, src schema.ScoreSet, override bool, ignored map[string]struct{}) {
	names := make([]string, 0, len(src))
	for name := range src {
		names = append(names, name)
	}
	sort.Strings(names)

	fromAlias := make(map[string]string)
	for _, name := range names {
		key, ok := idx.resolve(name)
		if !ok {
			ignored[name] = struct{}{}
			continue
		}
		if _, exact := idx.keys[name]; exact {
			continue
		}
		if _, exact := src[key]; exact {
			ignored[name] = struct{}{}
			continue
		}
		if _, taken := fromAlias[key]; taken {
			ignored[name] = struct{}{}
			continue
		}
		fromAlias[key] = name
	}

	set := func(key string, score float64) {
		if _, exists := dst[key]; exists && !override {
			return
		}
		dst[key] = score
	}
	for _, name := range names {
		if _, exact := idx.keys[name]; exact {
			set(name, src[name])
		}
	}
	for key, name := range fromAlias {
		set(key, src[name])
	}
}

// ResolveChart combines the config and a decoded score file into a chart request.
func ResolveChart(cfg *contract.Config, input schema.ScoreInput) (ChartInput, error) {
	set, err := resolvePreset(cfg, input)
	if err != nil {
		return ChartInput{}, err
	}

	presetName := set.Name
	categories := set.Categories
	if len(cfg.Categories) > 0 {
		byKey := make(map[string]schema.Category, len(set.Categories))
		for _, c := range set.Categories {
			byKey[c.Key] = c
		}
		categories = make([]schema.Category, len(cfg.Categories))
		for i, name := range cfg.Categories {
			if c, ok := byKey[name]; ok {
				categories[i] = c
			} else {
				categories[i] = schema.Category{Key: name}
			}
		}
		presetName = customPreset
	}

	resolved := schema.CategorySet{Name: presetName, Categories: categories}
	idx := newCategoryIndex(categories)

	scores := make(schema.ScoreSet, len(categories))
	ignoredSet := make(map[string]struct{})
	idx.applyScores(scores, input.Scores, false, ignoredSet)
	idx.applyScores(scores, cfg.Scores, true, ignoredSet)

	ignored := make([]string, 0, len(ignoredSet))
	for name := range ignoredSet {
		ignored = append(ignored, name)
	}
	sort.Strings(ignored)

	lineBreaks := resolved.LineBreaks()
	for name, lines := range cfg.LabelBreaks {
		if key, ok := idx.resolve(name); ok {
			name = key
		}
		lineBreaks[name] = lines
	}

	title := cfg.Title
	if title == "" {
		title = input.Title
	}

	return ChartInput{
		Preset:     presetName,
		Title:      title,
		Categories: resolved.Keys(),
		Scores:     scores,
		LineBreaks: lineBreaks,
		Ignored:    ignored,
	}, nil
}
