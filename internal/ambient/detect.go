package ambient

import (
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// EnvVar is the environment variable consulted before any terminal
// probing. Accepts the usual boolean spellings ("1", "true", "false").
const EnvVar = "TINT_PREFERS_DARK"

// Detector probes one mechanism for the environment's dark preference.
// Detectors are checked in order; the first available one that succeeds
// wins.
type Detector interface {
	// Name identifies the detector in logs.
	Name() string

	// Available reports whether the detector can be consulted at all.
	Available() bool

	// Detect returns the preference and whether detection succeeded.
	Detect() (prefersDark bool, ok bool)
}

// Detect runs the detector chain. When no detector succeeds the
// preference defaults to light (prefersDark=false): an environment
// limitation, not an error.
func Detect(detectors []Detector) (prefersDark bool, source string) {
	for _, d := range detectors {
		if !d.Available() {
			continue
		}
		if v, ok := d.Detect(); ok {
			return v, d.Name()
		}
	}
	return false, ""
}

// DefaultDetectors returns the standard chain: explicit env override
// first, then terminal background probing.
func DefaultDetectors() []Detector {
	return []Detector{EnvDetector{}, TerminalDetector{}}
}

// EnvDetector reads the preference from the TINT_PREFERS_DARK
// environment variable.
type EnvDetector struct{}

func (EnvDetector) Name() string { return "env" }

func (EnvDetector) Available() bool {
	return os.Getenv(EnvVar) != ""
}

func (EnvDetector) Detect() (bool, bool) {
	v, err := strconv.ParseBool(os.Getenv(EnvVar))
	if err != nil {
		return false, false
	}
	return v, true
}

// TerminalDetector probes the terminal's reported background color.
type TerminalDetector struct{}

func (TerminalDetector) Name() string { return "terminal" }

func (TerminalDetector) Available() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func (TerminalDetector) Detect() (bool, bool) {
	return lipgloss.HasDarkBackground(), true
}
