// Package colormode owns the day/night/auto color-mode state machine
// and its derivation to a concrete polarity and scheme name.
package colormode

import "fmt"

// Mode is the user-facing color-mode intent.
type Mode string

const (
	ModeDay   Mode = "day"
	ModeNight Mode = "night"
	ModeAuto  Mode = "auto"
)

// Polarity is the concrete day/night value after collapsing auto
// against the ambient preference. It is never "auto".
type Polarity string

const (
	PolarityDay   Polarity = "day"
	PolarityNight Polarity = "night"
)

// Default scheme names per polarity, used when no per-polarity override
// is configured.
const (
	DefaultDayScheme   = "light"
	DefaultNightScheme = "dark"
)

// ParseMode validates a color-mode string. Anything outside the
// enumerated set is rejected; it is never coerced.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDay, ModeNight, ModeAuto:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid color mode %q (must be day, night, or auto)", s)
	}
}

// State is the fully derived machine output: the intent plus the
// concrete polarity and scheme name it resolves to.
type State struct {
	Mode     Mode
	Polarity Polarity
	Scheme   string
}

// Derive computes polarity and scheme name from the machine inputs.
// Pure: day and night modes pin the polarity regardless of the ambient
// signal; auto follows it. Scheme overrides replace the per-polarity
// defaults.
func Derive(mode Mode, ambientPrefersDark bool, dayScheme, nightScheme string) State {
	polarity := PolarityDay
	switch {
	case mode == ModeNight:
		polarity = PolarityNight
	case mode == ModeDay:
		polarity = PolarityDay
	case ambientPrefersDark: // auto
		polarity = PolarityNight
	}

	scheme := dayScheme
	if polarity == PolarityDay && scheme == "" {
		scheme = DefaultDayScheme
	}
	if polarity == PolarityNight {
		scheme = nightScheme
		if scheme == "" {
			scheme = DefaultNightScheme
		}
	}

	return State{
		Mode:     mode,
		Polarity: polarity,
		Scheme:   scheme,
	}
}
