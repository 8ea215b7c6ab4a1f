// Package cmd defines the command-line interface for radar.
package cmd

import (
	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mcpCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("preset", "", "Category set: v1 or v2 or a preset from the config file (default: from score file, then v2)")
	rootCmd.PersistentFlags().String("categories", "", "Comma-separated category order, overriding the preset")
	rootCmd.PersistentFlags().String("title", "", "Chart title (overrides the score file title)")
	rootCmd.PersistentFlags().StringArray("score", nil, "Score override as name=value (repeatable)")
	rootCmd.PersistentFlags().Float64("center-x", schema.DefaultCenterX, "Chart center X coordinate")
	rootCmd.PersistentFlags().Float64("center-y", schema.DefaultCenterY, "Chart center Y coordinate")
	rootCmd.PersistentFlags().Float64("radius", schema.DefaultMaxRadius, "Radius of a full score")
	rootCmd.PersistentFlags().Float64("label-gap", schema.DefaultLabelGap, "Distance between the outer ring and the labels")
	rootCmd.PersistentFlags().String("grid-levels", contract.DefaultGridLevels, "Comma-separated grid ring levels in percent")
	rootCmd.PersistentFlags().Float64("line-pitch", schema.DefaultLinePitch, "Vertical distance between label lines")
	rootCmd.PersistentFlags().Int("canvas-width", schema.DefaultCanvasSize, "Canvas width in pixels")
	rootCmd.PersistentFlags().Int("canvas-height", schema.DefaultCanvasSize, "Canvas height in pixels")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json or csv (layout), svg or png (render)")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Render cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("history-backend", "", "Chart history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for chart history (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of layoutCmd to Viper
	layoutCmd.Flags().Bool("rank", false, "Sort rows by score instead of axis order")
	if err := viper.BindPFlags(layoutCmd.Flags()); err != nil {
		contract.LogFatal("Error binding layout flags", err)
	}

	// Bind all flags of renderCmd to Viper
	renderCmd.Flags().Bool("watch", false, "Re-render whenever the score file changes")
	renderCmd.Flags().String("debounce", contract.DefaultDebounce.String(), "Quiet period before a watched change is rendered")
	if err := viper.BindPFlags(renderCmd.Flags()); err != nil {
		contract.LogFatal("Error binding render flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
