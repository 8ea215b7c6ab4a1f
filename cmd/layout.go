package cmd

import (
	"github.com/huangsam/radar/core"
	"github.com/huangsam/radar/internal/contract"
	"github.com/spf13/cobra"
)

// layoutCmd computes and prints the chart geometry.
var layoutCmd = &cobra.Command{
	Use:   "layout [score-file]",
	Short: "Compute the radar chart geometry for a set of scores.",
	Long: `Compute the full geometry of a radar chart: grid rings, axes, data polygon,
markers and label placement.

The score file may be JSON or YAML, either a flat map of category to score
or an object with version, preset, title and scores. Use '-' to read stdin.
Scores range from 0 to 100 and every category of the preset needs one.

Output formats:
- text: table of axes with score, grade, point and label anchor
- json: the full layout, ready for any renderer
- csv: one row per axis

Examples:
  # Lay out a score file with the default preset
  radar layout scores.json

  # Pipe a scoring model payload and print JSON
  cat analysis.json | radar layout - --output json

  # Score on the command line, ranked by score
  radar layout --preset v1 --score composition=80 --score noise=65 ... --rank`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLayout(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Error running layout", err)
		}
	},
}
