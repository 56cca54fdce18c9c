package cmd

import (
	"github.com/IsaacParker30/paper-read/core"
	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/spf13/cobra"
)

// showCmd prints a single entry by paper ID.
var showCmd = &cobra.Command{
	Use:   "show <paper-id>",
	Short: "Show a logged reading by paper ID.",
	Long: `Show the full record for one logged reading, including its summary.

Examples:
  # Show a reading by its generated ID
  paperforest show 202406151

  # Show a reading by DOI
  paperforest show 10.1145/1327452.1327492

  # As JSON
  paperforest show 202406151 --output json`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		input.PaperIDArgStr = args[0]
		return sharedSetup(rootCtx, cmd, args)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteShow(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show reading", err)
		}
	},
}
