package cmd

import (
	"github.com/IsaacParker30/paper-read/core"
	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/spf13/cobra"
)

// forestCmd renders the calendar grid on its own.
var forestCmd = &cobra.Command{
	Use:   "forest",
	Short: "Render the calendar-grid forest of recent activity.",
	Long: `Render your reading activity as a weekday-by-week emoji grid.

Each column is a week, each row a weekday starting on Monday. Days with no
reading show a dot; active days grow from seeds into saplings, trees, and
eventually the woodland animals that move in once a streak gets long.

Examples:
  # Render the default 12 week window
  paperforest forest

  # A whole year of reading
  paperforest forest --weeks 52

  # Grid cells as JSON for custom rendering
  paperforest forest --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteForest(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot render forest", err)
		}
	},
}
