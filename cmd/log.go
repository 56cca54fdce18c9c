package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/IsaacParker30/paper-read/core"
	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/spf13/cobra"
)

// readSummaryFromStdin collects the summary text from standard input. It
// supports both piped input and an interactive paste ended with EOF (Ctrl-D).
func readSummaryFromStdin() (string, error) {
	if fi, err := os.Stdin.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) != 0 {
		fmt.Fprintln(os.Stderr, "Enter your summary, then press Ctrl-D:")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("could not read summary from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// logCmd records a paper reading.
var logCmd = &cobra.Command{
	Use:   "log <title>",
	Short: "Record a paper you read, with a summary.",
	Long: `Record that you read a paper today (or on a given day).

Every log needs a summary of at least the minimum word count. Writing the
summary is the habit; the forest only grows when you do.

The paper ID is generated from the log date when not given, so you can log
casual reads without hunting down a DOI.

Examples:
  # Log a read, typing the summary interactively
  paperforest log "Attention Is All You Need"

  # Log with a summary from a file
  paperforest log "Attention Is All You Need" < summary.txt

  # Log a read from two days ago with an explicit identifier
  paperforest log "MapReduce" --paper-id 10.1145/1327452.1327492 --date 2024-06-13

  # Relax the word gate for short papers
  paperforest log "A One Page Proof" --min-words 30 -s "Short and sweet."`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		input.TitleStr = args[0]
		return sharedSetup(rootCtx, cmd, args)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.Summary == "" {
			summary, err := readSummaryFromStdin()
			if err != nil {
				contract.LogFatal("Cannot read summary", err)
			}
			cfg.Summary = summary
		}
		if err := core.ExecuteLog(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot log reading", err)
		}
	},
}
