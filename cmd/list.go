package cmd

import (
	"github.com/IsaacParker30/paper-read/core"
	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/spf13/cobra"
)

// listCmd lists recent readings.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent reading entries.",
	Long: `List your most recent reading entries, newest first.

Examples:
  # The last 10 readings
  paperforest list

  # The last 50, as CSV
  paperforest list --limit 50 --output csv

  # Export the log to Parquet for analytics
  paperforest list --limit 1000 --output parquet --output-file readings.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteList(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list readings", err)
		}
	},
}
