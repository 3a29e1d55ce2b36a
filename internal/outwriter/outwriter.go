// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/apiarylab/hivetrend/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableLabelWidth calculates the maximum width for colony labels in
// table output based on terminal width and table configuration.
func GetMaxTableLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the date, value and status columns with
	// borders and padding
	baseWidth := 45

	// Calculate available space for the colony label
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable label width
		return 12
	}
	if available > 50 {
		// Maximum label width to prevent overly long labels
		return 50
	}
	return available
}
