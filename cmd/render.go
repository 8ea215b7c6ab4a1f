package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/huangsam/radar/core"
	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/internal/watch"
	"github.com/huangsam/radar/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// renderCmd draws the chart as an image.
var renderCmd = &cobra.Command{
	Use:   "render [score-file]",
	Short: "Render a radar chart as SVG or PNG.",
	Long: `Render the radar chart for a set of scores as an SVG document or PNG image.

The default output format for render is svg. PNG output requires --output-file.
Rendered charts are cached by the configured cache backend, so repeated renders
of the same scores and options are served from the cache.

With --watch, radar keeps running and re-renders whenever the score file
changes, until interrupted.

Examples:
  # Render to stdout
  radar render scores.json > chart.svg

  # Render a PNG
  radar render scores.json --output png --output-file chart.png

  # Keep the chart in sync while editing the scores
  radar render scores.yaml --output-file chart.svg --watch`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfigFile(); err != nil {
			return err
		}
		// Data formats make no sense here, so fall back to SVG unless asked otherwise
		configured := schema.OutputMode(strings.ToLower(viper.GetString("output")))
		if !configured.IsArtifact() && !cmd.Flags().Changed("output") {
			_ = cmd.Flags().Set("output", string(schema.SVGOut))
		}
		return sharedSetup(rootCtx, cmd, args)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRender(rootCtx, cfg, cacheManager); err != nil {
			if !cfg.Watch {
				contract.LogFatal("Error running render", err)
			}
			contract.LogWarn("Initial render failed", err)
		}
		if !cfg.Watch {
			return
		}
		if err := watchAndRender(); err != nil {
			contract.LogFatal("Error watching score file", err)
		}
	},
}

// watchAndRender re-renders on every score file change until SIGINT or SIGTERM.
func watchAndRender() error {
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(cfg.ScorePath, cfg.Debounce)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	if cfg.UseEmojis {
		fmt.Printf("👀 Watching %s (Ctrl+C to stop)\n", w.Path())
	} else {
		fmt.Printf("Watching %s (Ctrl+C to stop)\n", w.Path())
	}
	return w.Run(ctx, func() error {
		return core.ExecuteRender(context.WithoutCancel(ctx), cfg, cacheManager)
	})
}
