package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Delta label constants.
const (
	RiserValue  = "Riser"  // Ranked well above ADP
	FallerValue = "Faller" // Ranked well below ADP
	SteadyValue = "Steady" // Within the noise band around ADP
)

// deltaNoiseBand is the absolute rank delta below which a player is steady.
const deltaNoiseBand = 3

// Color variables for console output.
var (
	RiserColor  = color.New(color.FgGreen, color.Bold) // riserColor marks value relative to ADP.
	FallerColor = color.New(color.FgRed)               // fallerColor marks players the formula dislikes.
	SteadyColor = color.New(color.FgCyan)              // steadyColor is informational.
	MineColor   = color.New(color.FgYellow, color.Bold)
)

// GetPlainDeltaLabel returns a plain text label for a rank delta. This is
// the core logic used for CSV, JSON, and table printing.
func GetPlainDeltaLabel(delta int) string {
	switch {
	case delta >= deltaNoiseBand:
		return RiserValue
	case delta <= -deltaNoiseBand:
		return FallerValue
	default:
		return SteadyValue
	}
}

// GetColorDeltaLabel returns a colored text label for console output.
// It uses GetPlainDeltaLabel to determine the string, then applies the
// appropriate color.
func GetColorDeltaLabel(delta int) string {
	text := GetPlainDeltaLabel(delta)

	switch text {
	case RiserValue:
		return RiserColor.Sprint(text)
	case FallerValue:
		return FallerColor.Sprint(text)
	default: // "Steady"
		return SteadyColor.Sprint(text)
	}
}

// FormatDelta renders a signed rank delta the way draft boards do: +7, -3,
// or a dash for no movement.
func FormatDelta(delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("+%d", delta)
	case delta < 0:
		return fmt.Sprintf("%d", delta)
	default:
		return "-"
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
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

// GetSessionDBFilePath returns the path to the SQLite DB file for session storage.
func GetSessionDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".draftboard_session.db"
	}
	return filepath.Join(homeDir, ".draftboard_session.db")
}

// GetArchiveDBFilePath returns the path to the SQLite DB file for archive storage.
func GetArchiveDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".draftboard_archive.db"
	}
	return filepath.Join(homeDir, ".draftboard_archive.db")
}

// TruncateName truncates a player name to a maximum width with ellipsis
// suffix. Requires maxWidth > 3 so there is room for the ellipsis and at
// least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
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
