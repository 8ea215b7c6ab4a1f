package contract

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/radar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns the raw input produced by the CLI defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		CenterX:      schema.DefaultCenterX,
		CenterY:      schema.DefaultCenterY,
		Radius:       schema.DefaultMaxRadius,
		LabelGap:     schema.DefaultLabelGap,
		GridLevels:   DefaultGridLevels,
		LinePitch:    schema.DefaultLinePitch,
		CanvasWidth:  schema.DefaultCanvasSize,
		CanvasHeight: schema.DefaultCanvasSize,
		Precision:    DefaultPrecision,
		Output:       "text",
		CacheBackend: string(schema.SQLiteBackend),
		Emoji:        "no",
		Color:        "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config"},
		{name: "json output", modify: func(in *ConfigRawInput) { in.Output = "JSON" }},
		{name: "invalid output format", modify: func(in *ConfigRawInput) { in.Output = "pdf" }, expectError: true},
		{name: "png without output file", modify: func(in *ConfigRawInput) { in.Output = "png" }, expectError: true},
		{
			name: "png with output file",
			modify: func(in *ConfigRawInput) {
				in.Output = "png"
				in.OutputFile = "chart.png"
			},
		},
		{name: "negative precision", modify: func(in *ConfigRawInput) { in.Precision = -1 }, expectError: true},
		{name: "precision too high", modify: func(in *ConfigRawInput) { in.Precision = MaxPrecision + 1 }, expectError: true},
		{name: "zero radius", modify: func(in *ConfigRawInput) { in.Radius = 0 }, expectError: true},
		{name: "negative label gap", modify: func(in *ConfigRawInput) { in.LabelGap = -2 }, expectError: true},
		{name: "grid level above 100", modify: func(in *ConfigRawInput) { in.GridLevels = "50,150" }, expectError: true},
		{name: "grid level not a number", modify: func(in *ConfigRawInput) { in.GridLevels = "50,abc" }, expectError: true},
		{name: "zero canvas", modify: func(in *ConfigRawInput) { in.CanvasWidth = 0 }, expectError: true},
		{name: "largest canvas", modify: func(in *ConfigRawInput) { in.CanvasWidth, in.CanvasHeight = schema.MaxCanvasSize, schema.MaxCanvasSize }},
		{name: "canvas too wide", modify: func(in *ConfigRawInput) { in.CanvasWidth = 20000 }, expectError: true},
		{name: "canvas too tall", modify: func(in *ConfigRawInput) { in.CanvasHeight = schema.MaxCanvasSize + 1 }, expectError: true},
		{name: "NaN center", modify: func(in *ConfigRawInput) { in.CenterX = math.NaN() }, expectError: true},
		{name: "infinite radius", modify: func(in *ConfigRawInput) { in.Radius = math.Inf(1) }, expectError: true},
		{name: "infinite label gap", modify: func(in *ConfigRawInput) { in.LabelGap = math.Inf(1) }, expectError: true},
		{name: "NaN label gap", modify: func(in *ConfigRawInput) { in.LabelGap = math.NaN() }, expectError: true},
		{name: "infinite line pitch", modify: func(in *ConfigRawInput) { in.LinePitch = math.Inf(1) }, expectError: true},
		{name: "unknown preset", modify: func(in *ConfigRawInput) { in.Preset = "v9" }, expectError: true},
		{name: "builtin preset upper case", modify: func(in *ConfigRawInput) { in.Preset = "V1" }},
		{name: "bad score flag", modify: func(in *ConfigRawInput) { in.Score = []string{"sharpness"} }, expectError: true},
		{name: "bad emoji flag", modify: func(in *ConfigRawInput) { in.Emoji = "maybe" }, expectError: true},
		{name: "invalid cache backend", modify: func(in *ConfigRawInput) { in.CacheBackend = "redis" }, expectError: true},
		{name: "mysql backend without connection string", modify: func(in *ConfigRawInput) { in.CacheBackend = "mysql" }, expectError: true},
		{name: "postgresql backend without connection string", modify: func(in *ConfigRawInput) { in.CacheBackend = "postgresql" }, expectError: true},
		{
			name: "mysql backend with connection string",
			modify: func(in *ConfigRawInput) {
				in.CacheBackend = "mysql"
				in.CacheDBConnect = "user:pass@tcp(localhost:3306)/radar"
			},
		},
		{name: "none backend", modify: func(in *ConfigRawInput) { in.CacheBackend = "none" }},
		{name: "invalid history backend", modify: func(in *ConfigRawInput) { in.HistoryBackend = "mongo" }, expectError: true},
		{
			name: "sqlite cache and history on the same file",
			modify: func(in *ConfigRawInput) {
				in.CacheDBConnect = "/tmp/radar.db"
				in.HistoryBackend = "sqlite"
				in.HistoryDBConnect = "/tmp/radar.db"
			},
			expectError: true,
		},
		{name: "sqlite history on default file", modify: func(in *ConfigRawInput) { in.HistoryBackend = "sqlite" }},
		{name: "watch without score file", modify: func(in *ConfigRawInput) { in.Watch = true }, expectError: true},
		{
			name: "watch without output file",
			modify: func(in *ConfigRawInput) {
				in.Watch = true
				in.ScorePathStr = "scores.yaml"
			},
			expectError: true,
		},
		{
			name: "watch with score and output file",
			modify: func(in *ConfigRawInput) {
				in.Watch = true
				in.ScorePathStr = "scores.yaml"
				in.OutputFile = "chart.svg"
				in.Debounce = "1s"
			},
		},
		{name: "invalid debounce", modify: func(in *ConfigRawInput) { in.Debounce = "soon" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			if tt.modify != nil {
				tt.modify(input)
			}

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)

			if tt.expectError {
				assert.Error(t, err, "ProcessAndValidate should return an error for %s", tt.name)
				return
			}
			require.NoError(t, err, "ProcessAndValidate should not return an error for %s", tt.name)
			assert.Contains(t, cfg.Presets, schema.PresetV1)
			assert.Contains(t, cfg.Presets, schema.PresetV2)
		})
	}
}

func TestProcessAndValidatePopulatesConfig(t *testing.T) {
	input := validInput()
	input.ScorePathStr = " scores.json "
	input.Preset = "v1"
	input.Categories = "a, b ,,c"
	input.Score = []string{"noise=42", "exposure = 77.5"}
	input.GridLevels = "25,50,75,100"
	input.CenterX = 200
	input.Debounce = "500ms"
	input.Labels = map[string][]string{"white_balance": {"White", "Balance"}, "empty": {}}

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "scores.json", cfg.ScorePath)
	assert.Equal(t, schema.PresetV1, cfg.Preset)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Categories)
	assert.Equal(t, schema.ScoreSet{"noise": 42, "exposure": 77.5}, cfg.Scores)
	assert.Equal(t, []float64{25, 50, 75, 100}, cfg.Options.GridLevels)
	assert.Equal(t, schema.Point{X: 200, Y: schema.DefaultCenterY}, cfg.Options.Center)
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce)
	assert.Equal(t, []string{"White", "Balance"}, cfg.LabelBreaks["white_balance"])
	assert.NotContains(t, cfg.LabelBreaks, "empty")
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.UseEmojis)
}

func TestProcessPresetsFromConfigFile(t *testing.T) {
	input := validInput()
	input.Preset = "Food"
	input.Presets = map[string]PresetRawInput{
		"food": {
			Description: "Food photography",
			Categories: []schema.Category{
				{Key: "plating", Display: "Plating"},
				{Key: "lighting"},
				{Key: "freshness", Aliases: []string{"fresh"}},
			},
		},
		// A config entry may replace a built-in preset.
		"v2": {Categories: []schema.Category{{Key: "x"}, {Key: "y"}, {Key: "z"}}},
	}

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	require.Contains(t, cfg.Presets, "food")
	assert.Equal(t, "food", cfg.Preset)
	assert.Equal(t, []string{"plating", "lighting", "freshness"}, cfg.Presets["food"].Keys())
	assert.Equal(t, []string{"x", "y", "z"}, cfg.Presets[schema.PresetV2].Keys())
	assert.Equal(t, 6, len(cfg.Presets[schema.PresetV1].Categories))
}

func TestProcessPresetsRejectsEmptyKey(t *testing.T) {
	input := validInput()
	input.Presets = map[string]PresetRawInput{
		"broken": {Categories: []schema.Category{{Key: "a"}, {Key: "  "}}},
	}
	err := ProcessAndValidate(&Config{}, input)
	assert.ErrorContains(t, err, "broken")
}

func TestConfigClone(t *testing.T) {
	input := validInput()
	input.Categories = "a,b,c"
	input.Score = []string{"a=1"}
	input.Labels = map[string][]string{"a": {"A", "1"}}
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	clone := cfg.Clone()
	clone.Categories[0] = "changed"
	clone.Scores["a"] = 99
	clone.Options.GridLevels[0] = 99
	clone.LabelBreaks["a"][0] = "changed"
	delete(clone.Presets, schema.PresetV1)

	assert.Equal(t, "a", cfg.Categories[0])
	assert.Equal(t, 1.0, cfg.Scores["a"])
	assert.Equal(t, 20.0, cfg.Options.GridLevels[0])
	assert.Equal(t, "A", cfg.LabelBreaks["a"][0])
	assert.Contains(t, cfg.Presets, schema.PresetV1)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{schema.SQLiteBackend, "", false},
		{schema.SQLiteBackend, filepath.Join("tmp", "x.db"), false},
		{schema.NoneBackend, "", false},
		{schema.MySQLBackend, "", true},
		{schema.MySQLBackend, "user:pass@localhost/radar", true},
		{schema.MySQLBackend, "user:pass@tcp(localhost:3306)", true},
		{schema.MySQLBackend, "user:pass@tcp(localhost:3306)/radar", false},
		{schema.PostgreSQLBackend, "", true},
		{schema.PostgreSQLBackend, "dbname=radar", true},
		{schema.PostgreSQLBackend, "host=localhost", true},
		{schema.PostgreSQLBackend, "host=localhost port=5432 dbname=radar", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend)+"/"+tt.connStr, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(profile, "out/radar"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "out/radar", profile.Prefix)
}
