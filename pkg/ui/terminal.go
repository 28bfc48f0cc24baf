package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetNoColor disables colored output for every style in the package.
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled.
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// ColorWanted reports whether output to f should be colored: it must be a
// terminal, NO_COLOR must be unset and TERM must not be "dumb".
func ColorWanted(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal(f)
}

// DefaultFormat picks console output for terminals and JSON Lines for
// pipes and files.
func DefaultFormat(f *os.File, console, lines string) string {
	if IsTerminal(f) {
		return console
	}
	return lines
}
