// Package detector picks how check progress is drawn.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects the progress renderer.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModeTUI draws the interactive view.
	ModeTUI
	// ModeLinear prints one line per finished case.
	ModeLinear
)

// String returns the name accepted by ResolveMode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns ModeTUI only when stderr is a terminal outside CI.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	if !isTTY || ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies a user override to the detected mode. Unknown values
// keep the detected mode.
func ResolveMode(detected OutputMode, override string) OutputMode {
	switch override {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return detected
	}
}
