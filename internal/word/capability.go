package word

import (
	"os"
	"strings"
)

// Strategy selects how MSB is computed.
type Strategy uint8

const (
	// Generic is the word-parallel algorithm, available everywhere.
	Generic Strategy = iota
	// Hardware uses a leading-zero-count instruction.
	Hardware
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case Generic:
		return "generic"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a string into a Strategy value.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "hardware":
		return Hardware, true
	default:
		return Generic, false
	}
}

// Package-level state, written once by the platform init.
var (
	// activeStrategy is the selected MSB implementation.
	activeStrategy Strategy

	// hasOverride is true if FUSION_MSB selected the strategy.
	hasOverride bool

	// hasLeadingZeroCount is set by platform-specific init.
	hasLeadingZeroCount bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv("FUSION_MSB"); override != "" {
		if s, ok := ParseStrategy(override); ok && isStrategyAvailable(s) {
			hasOverride = true
			activeStrategy = s
			return
		}
		// Unknown or unavailable override: fall through to auto-detection.
	}

	activeStrategy = selectBestStrategy()
}

func isStrategyAvailable(s Strategy) bool {
	switch s {
	case Generic:
		return true
	case Hardware:
		return hasLeadingZeroCount
	default:
		return false
	}
}

func selectBestStrategy() Strategy {
	if hasLeadingZeroCount {
		return Hardware
	}
	return Generic
}

// ActiveStrategy returns the strategy MSB dispatches to.
func ActiveStrategy() Strategy {
	return activeStrategy
}

// HasOverride reports whether FUSION_MSB chose the active strategy.
func HasOverride() bool {
	return hasOverride
}
