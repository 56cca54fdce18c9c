package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Streak label constants.
const (
	LegendaryValue = "Legendary" // 30 days and beyond
	HotValue       = "Hot"       // Solid week-plus habit
	WarmValue      = "Warm"      // Streak under way
	ColdValue      = "Cold"      // No active streak
)

// Color variables for console output.
var (
	LegendaryColor = color.New(color.FgMagenta, color.Bold) // legendaryColor celebrates long runs.
	HotColor       = color.New(color.FgRed, color.Bold)     // hotColor marks an established habit.
	WarmColor      = color.New(color.FgYellow)              // warmColor marks a streak in progress.
	ColdColor      = color.New(color.FgCyan)                // coldColor marks a broken or absent streak.
)

// GetPlainLabel returns a plain text label for a streak length. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainLabel(streak int) string {
	switch {
	case streak >= 30:
		return LegendaryValue
	case streak >= 7:
		return HotValue
	case streak >= 1:
		return WarmValue
	default:
		return ColdValue
	}
}

// GetColorLabel returns a colored text label for console output.
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(streak int) string {
	text := GetPlainLabel(streak)

	switch text {
	case LegendaryValue:
		return LegendaryColor.Sprint(text)
	case HotValue:
		return HotColor.Sprint(text)
	case WarmValue:
		return WarmColor.Sprint(text)
	default: // "Cold"
		return ColdColor.Sprint(text)
	}
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetLogDBFilePath returns the path to the SQLite DB file for the reading log.
func GetLogDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".paperforest.db"
	}
	return filepath.Join(homeDir, ".paperforest.db")
}

// TruncateTitle truncates a paper title to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for both content and the "..." marker.
func TruncateTitle(title string, maxWidth int) string {
	runes := []rune(title)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return title
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
