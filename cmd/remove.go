package cmd

import (
	"github.com/IsaacParker30/paper-read/core"
	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/spf13/cobra"
)

// removeCmd deletes entries by paper ID.
var removeCmd = &cobra.Command{
	Use:   "remove <paper-id>",
	Short: "Remove logged readings by paper ID.",
	Long: `Delete every logged reading that matches the given paper ID.

Removing a day's only reading also removes that day from your streaks, so
use this for corrections rather than pruning.

Examples:
  # Remove a mistaken entry
  paperforest remove 202406151`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		input.PaperIDArgStr = args[0]
		return sharedSetup(rootCtx, cmd, args)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRemove(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot remove reading", err)
		}
	},
}
