package cmd

import (
	"github.com/huangsam/radar/core"
	"github.com/huangsam/radar/internal/contract"
	"github.com/spf13/cobra"
)

// presetsCmd lists the category sets.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available category sets.",
	Long: `List the built-in category sets and the ones defined in the config file.

Built-in presets:
- v1: composition, noise, exposure, dynamic range, sharpness, white balance
- v2: composition, subject, exposure, aesthetics, sharpness, color

Additional presets can be defined in .radar.yaml:

  presets:
    portrait:
      description: Portrait review
      categories:
        - key: pose
        - key: light
          display: Lighting
        - key: focus
          aliases: [sharpness]

Examples:
  radar presets
  radar presets --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePresets(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Error listing presets", err)
		}
	},
}
