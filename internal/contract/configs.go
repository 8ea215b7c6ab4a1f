package contract

import (
	"fmt"
	"maps"
	"math"
	"strings"
	"time"

	"github.com/huangsam/radar/schema"
)

// Default values for configuration.
const (
	DefaultPrecision  = 2
	MaxPrecision      = 6
	DefaultDebounce   = 250 * time.Millisecond
	DefaultGridLevels = "20,40,60,80,100"
)

// StdinPath is the score path that reads from standard input.
const StdinPath = "-"

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// PresetRawInput is a category set defined in the YAML config file.
type PresetRawInput struct {
	Description string            `mapstructure:"description"`
	Categories  []schema.Category `mapstructure:"categories"`
}

// Config holds the runtime configuration for chart generation.
// This struct remains the "final, validated" config.
type Config struct {
	ScorePath  string          // Score file path; StdinPath reads stdin; empty uses only --score
	Preset     string          // Preset name; empty means resolve from the score file or DefaultPreset
	Categories []string        // Explicit category order, overrides the preset
	Title      string          // Chart title override
	Scores     schema.ScoreSet // Values from --score, applied on top of the score file

	Options    schema.ChartOptions
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Rank       bool // Sort table rows by score instead of axis order
	Width      int  // Terminal width override (0 = auto-detect)

	// Presets holds the built-in category sets merged with the ones from the config file
	Presets map[string]schema.CategorySet

	// LabelBreaks is a mapping of [CategoryKey] = label lines, from the config file
	LabelBreaks map[string][]string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	Watch    bool
	Debounce time.Duration

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ScorePathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Preset           string   `mapstructure:"preset"`
	Categories       string   `mapstructure:"categories"`
	Title            string   `mapstructure:"title"`
	Score            []string `mapstructure:"score"`
	CenterX          float64  `mapstructure:"center-x"`
	CenterY          float64  `mapstructure:"center-y"`
	Radius           float64  `mapstructure:"radius"`
	LabelGap         float64  `mapstructure:"label-gap"`
	GridLevels       string   `mapstructure:"grid-levels"`
	LinePitch        float64  `mapstructure:"line-pitch"`
	CanvasWidth      int      `mapstructure:"canvas-width"`
	CanvasHeight     int      `mapstructure:"canvas-height"`
	Precision        int      `mapstructure:"precision"`
	Output           string   `mapstructure:"output"`
	OutputFile       string   `mapstructure:"output-file"`
	Width            int      `mapstructure:"width"`
	CacheBackend     string   `mapstructure:"cache-backend"`
	CacheDBConnect   string   `mapstructure:"cache-db-connect"`
	HistoryBackend   string   `mapstructure:"history-backend"`
	HistoryDBConnect string   `mapstructure:"history-db-connect"`
	Emoji            string   `mapstructure:"emoji"`
	Color            string   `mapstructure:"color"`

	// --- Fields from layoutCmd.Flags() ---
	Rank bool `mapstructure:"rank"`

	// --- Fields from renderCmd.Flags() ---
	Watch    bool   `mapstructure:"watch"`
	Debounce string `mapstructure:"debounce"`

	// --- Custom category sets from config file ---
	Presets map[string]PresetRawInput `mapstructure:"presets"`

	// --- Label line breaks from config file ---
	Labels map[string][]string `mapstructure:"labels"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Categories != nil {
		clone.Categories = make([]string, len(c.Categories))
		copy(clone.Categories, c.Categories)
	}
	if c.Scores != nil {
		clone.Scores = make(schema.ScoreSet, len(c.Scores))
		maps.Copy(clone.Scores, c.Scores)
	}
	if c.Options.GridLevels != nil {
		clone.Options.GridLevels = make([]float64, len(c.Options.GridLevels))
		copy(clone.Options.GridLevels, c.Options.GridLevels)
	}
	if c.Presets != nil {
		clone.Presets = make(map[string]schema.CategorySet, len(c.Presets))
		maps.Copy(clone.Presets, c.Presets)
	}
	if c.LabelBreaks != nil {
		clone.LabelBreaks = make(map[string][]string, len(c.LabelBreaks))
		for key, lines := range c.LabelBreaks {
			clone.LabelBreaks[key] = append([]string(nil), lines...)
		}
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processChartOptions(cfg, input); err != nil {
		return err
	}
	if err := processPresets(cfg, input); err != nil {
		return err
	}
	if err := processScoreInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processWatchMode(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates render cache and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if cfg.CacheBackend == "" {
		cfg.CacheBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return fmt.Errorf("cache-db-connect: %w", err)
	}

	// --- History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend == "" {
		return nil
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("history-db-connect: %w", err)
	}

	// Cache and history must not share one SQLite file
	if cfg.CacheBackend == schema.SQLiteBackend && cfg.HistoryBackend == schema.SQLiteBackend {
		cacheDBPath := cfg.CacheDBConnect
		if cacheDBPath == "" {
			cacheDBPath = GetCacheDBFilePath()
		}
		historyDBPath := cfg.HistoryDBConnect
		if historyDBPath == "" {
			historyDBPath = GetHistoryDBFilePath()
		}
		if cacheDBPath == historyDBPath {
			return fmt.Errorf("cache and history storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
		}
	}

	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.ScorePath = strings.TrimSpace(input.ScorePathStr)
	cfg.Title = input.Title
	cfg.OutputFile = input.OutputFile
	cfg.Rank = input.Rank
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(orDefault(input.Emoji, "no"))
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(orDefault(input.Color, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(orDefault(input.Output, string(schema.TextOut))))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, svg, png", input.Output)
	}

	// Binary output cannot go to a terminal
	if cfg.Output == schema.PNGOut && cfg.OutputFile == "" {
		return fmt.Errorf("png output requires --output-file")
	}

	if input.Width < 0 {
		return fmt.Errorf("width must not be negative (received %d)", input.Width)
	}

	return nil
}

// processChartOptions builds the chart geometry from the raw flag values.
func processChartOptions(cfg *Config, input *ConfigRawInput) error {
	opts := schema.DefaultChartOptions()
	opts.Center = schema.Point{X: input.CenterX, Y: input.CenterY}
	opts.MaxRadius = input.Radius
	opts.LabelGap = input.LabelGap
	opts.LinePitch = input.LinePitch

	levels, err := ParseFloatList(orDefault(input.GridLevels, DefaultGridLevels))
	if err != nil {
		return fmt.Errorf("invalid --grid-levels: %w", err)
	}
	opts.GridLevels = levels

	for name, v := range map[string]float64{"center-x": opts.Center.X, "center-y": opts.Center.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number", name)
		}
	}
	if !(opts.MaxRadius > 0) || math.IsInf(opts.MaxRadius, 0) {
		return fmt.Errorf("radius must be a finite number greater than 0 (received %v)", opts.MaxRadius)
	}
	if !(opts.LabelGap >= 0) || math.IsInf(opts.LabelGap, 0) {
		return fmt.Errorf("label-gap must be a finite number that is not negative (received %v)", opts.LabelGap)
	}
	if !(opts.LinePitch >= 0) || math.IsInf(opts.LinePitch, 0) {
		return fmt.Errorf("line-pitch must be a finite number that is not negative (received %v)", opts.LinePitch)
	}
	for _, level := range levels {
		if level <= 0 || level > 100 {
			return fmt.Errorf("grid levels must be within (0, 100] (received %v)", level)
		}
	}

	if input.CanvasWidth <= 0 || input.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size must be positive (received %dx%d)", input.CanvasWidth, input.CanvasHeight)
	}
	if input.CanvasWidth > schema.MaxCanvasSize || input.CanvasHeight > schema.MaxCanvasSize {
		return fmt.Errorf("canvas size must be at most %dx%d (received %dx%d)", schema.MaxCanvasSize, schema.MaxCanvasSize, input.CanvasWidth, input.CanvasHeight)
	}
	opts.Width = input.CanvasWidth
	opts.Height = input.CanvasHeight

	cfg.Options = opts
	return nil
}

// processPresets merges the config file presets over the built-in ones and
// validates the preset and category selection.
func processPresets(cfg *Config, input *ConfigRawInput) error {
	presets := schema.BuiltinPresets()
	for name, raw := range input.Presets {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return fmt.Errorf("preset names must not be empty")
		}
		categories := make([]schema.Category, 0, len(raw.Categories))
		for i, c := range raw.Categories {
			c.Key = strings.TrimSpace(c.Key)
			if c.Key == "" {
				return fmt.Errorf("preset %s: category %d has no key", name, i)
			}
			categories = append(categories, c)
		}
		presets[name] = schema.CategorySet{Name: name, Description: raw.Description, Categories: categories}
	}
	cfg.Presets = presets

	cfg.Preset = strings.ToLower(strings.TrimSpace(input.Preset))
	if cfg.Preset != "" {
		if _, ok := presets[cfg.Preset]; !ok {
			return fmt.Errorf("unknown preset '%s'. must be one of %s", input.Preset, strings.Join(schema.SortedPresetNames(presets), ", "))
		}
	}

	cfg.Categories = SplitList(input.Categories)

	cfg.LabelBreaks = make(map[string][]string, len(input.Labels))
	for key, lines := range input.Labels {
		if len(lines) == 0 {
			continue
		}
		cfg.LabelBreaks[key] = append([]string(nil), lines...)
	}
	return nil
}

// processScoreInputs parses the --score name=value overrides.
func processScoreInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Scores = make(schema.ScoreSet, len(input.Score))
	for _, entry := range input.Score {
		name, value, err := ParseScoreAssignment(entry)
		if err != nil {
			return err
		}
		cfg.Scores[name] = value
	}
	return nil
}

// processWatchMode handles the watch parameters.
func processWatchMode(cfg *Config, input *ConfigRawInput) error {
	cfg.Watch = input.Watch
	cfg.Debounce = DefaultDebounce
	if input.Debounce != "" {
		d, err := time.ParseDuration(input.Debounce)
		if err != nil {
			return fmt.Errorf("invalid --debounce: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("debounce must be positive (received %s)", d)
		}
		cfg.Debounce = d
	}

	if !cfg.Watch {
		return nil
	}
	if cfg.ScorePath == "" || cfg.ScorePath == StdinPath {
		return fmt.Errorf("--watch requires a score file path")
	}
	if cfg.OutputFile == "" {
		return fmt.Errorf("--watch requires --output-file")
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
