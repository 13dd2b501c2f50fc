package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/kademeqms/altscore/schema"
)

// Scoring label constants.
const (
	HighValue   = "High"   // High value
	MediumValue = "Medium" // Medium value
	LowValue    = "Low"    // Low value
)

// Color variables for console output.
var (
	HighColor   = color.New(color.FgGreen, color.Bold) // strong performer
	MediumColor = color.New(color.FgYellow)            // acceptable, not bold
	LowColor    = color.New(color.FgRed)               // weak performer
	BestColor   = color.New(color.FgGreen, color.Bold) // best value in a column
)

// GetPlainLabel returns a plain text label for a composite average.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(average float64) string {
	return schema.GetPlainLabel(average)
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(average float64) string {
	text := GetPlainLabel(average)

	switch text {
	case HighValue:
		return HighColor.Sprint(text)
	case MediumValue:
		return MediumColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects os.Stdout.
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

// GetDataDBFilePath returns the path to the SQLite DB file for benchmark data.
func GetDataDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".altscore_data.db"
	}
	return filepath.Join(homeDir, ".altscore_data.db")
}

// GetRunsDBFilePath returns the path to the SQLite DB file for evaluation runs.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".altscore_runs.db"
	}
	return filepath.Join(homeDir, ".altscore_runs.db")
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the ellipsis and one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
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

// ParseID parses a positive numeric identifier given on the command line.
func ParseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q: must be a positive integer", kind, s)
	}
	return id, nil
}
