package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Feed status label constants, derived from the weight zones of the
// original dashboard: below 15 kg a colony is starving, below 20 kg it
// needs watching, up to 45 kg is the optimal band.
const (
	CriticalFeed = "Critical" // reserves exhausted, feed immediately
	WatchFeed    = "Watch"    // reserves shrinking, check soon
	OptimalFeed  = "Optimal"  // healthy reserve band
	HeavyFeed    = "Heavy"    // above the optimal band, likely honey-bound
	NoReading    = "-"        // no weight observation at all
)

// Weight thresholds in kilograms for the feed status zones.
const (
	CriticalWeightKg = 15.0
	WatchWeightKg    = 20.0
	OptimalWeightKg  = 45.0
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)    // immediate danger
	WatchColor    = color.New(color.FgYellow)             // standard caution, not bold
	OptimalColor  = color.New(color.FgGreen)              // healthy signal
	HeavyColor    = color.New(color.FgCyan)               // informational
	WarnColor     = color.New(color.FgYellow, color.Bold) // non-fatal notices
)

// ColonyPalette provides stable legend colors; the selection state's
// insertion order indexes into it, wrapping when exhausted.
var ColonyPalette = []*color.Color{
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgRed),
}

// ColorForSlot returns the palette color for a selection slot. Slots past
// the palette wrap around, and negative slots (stale or unselected
// colonies) get the first color rather than panicking.
func ColorForSlot(slot int) *color.Color {
	if slot < 0 {
		slot = 0
	}
	return ColonyPalette[slot%len(ColonyPalette)]
}

// GetFeedLabel returns the plain feed status label for a weight reading.
// This is the core logic used for CSV, JSON, and table printing.
func GetFeedLabel(weightKg *float64) string {
	if weightKg == nil {
		return NoReading
	}
	switch {
	case *weightKg < CriticalWeightKg:
		return CriticalFeed
	case *weightKg < WatchWeightKg:
		return WatchFeed
	case *weightKg <= OptimalWeightKg:
		return OptimalFeed
	default:
		return HeavyFeed
	}
}

// GetFeedColorLabel returns a colored feed label for console output.
// It uses GetFeedLabel to determine the string, then applies the color.
func GetFeedColorLabel(weightKg *float64) string {
	text := GetFeedLabel(weightKg)
	switch text {
	case CriticalFeed:
		return CriticalColor.Sprint(text)
	case WatchFeed:
		return WatchColor.Sprint(text)
	case OptimalFeed:
		return OptimalColor.Sprint(text)
	case HeavyFeed:
		return HeavyColor.Sprint(text)
	default:
		return text
	}
}

// TruncateLabel shortens an identifier to maxWidth runes, marking the cut
// with a leading ellipsis so the distinguishing suffix stays visible.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if maxWidth <= 0 || len(runes) <= maxWidth {
		return label
	}
	if maxWidth <= 1 {
		return "…"
	}
	return "…" + string(runes[len(runes)-maxWidth+1:])
}

// SelectOutputFile returns the appropriate file handle for output, based
// on the provided file path. An empty path means stdout.
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

// GetSnapshotDBFilePath returns the path to the SQLite DB file for load
// snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".hivetrend_snapshots.db"
	}
	return filepath.Join(homeDir, ".hivetrend_snapshots.db")
}
