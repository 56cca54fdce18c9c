package outwriter

import (
	"os"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableTitleWidth calculates the maximum width for paper titles in
// table output based on terminal width.
func GetMaxTableTitleWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (date, paper ID, words) plus
	// table borders, separators, and padding.
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable title width
		return 15
	}
	if available > 70 {
		// Maximum title width to prevent overly long rows
		return 70
	}
	return available
}
