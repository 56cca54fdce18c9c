package cmd

import (
	"github.com/IsaacParker30/paper-read/core"
	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/spf13/cobra"
)

// statsCmd summarizes reading activity.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals, streaks and the forest view.",
	Long: `Summarize your reading activity.

Shows:
- Total number of logged readings
- Number of distinct active days
- Current streak (consecutive days ending today or yesterday)
- Longest streak ever recorded
- The forest view for the configured window

Examples:
  # Summarize the default 12 week window
  paperforest stats

  # Widen the forest to half a year
  paperforest stats --weeks 26

  # Machine readable output for scripting
  paperforest stats --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot compute stats", err)
		}
	},
}
