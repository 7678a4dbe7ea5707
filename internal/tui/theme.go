package tui

import (
	"github.com/charmbracelet/huh"
)

// currentTheme holds the currently configured theme for TUI components.
// When nil, Theme() returns the default relver theme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// If the name is invalid or empty, the relver theme is used.
func SetTheme(name string) {
	if name == "" {
		currentTheme = nil
		return
	}
	theme := GetTheme(name)
	if theme != nil {
		currentTheme = theme
	} else {
		// Fall back to the relver theme for invalid names
		currentTheme = nil
	}
}

// Theme returns the current theme for TUI components.
// Returns the relver theme if no theme has been set.
func Theme() *huh.Theme {
	if currentTheme == nil {
		return relverTheme()
	}
	return currentTheme
}

// resetTheme resets the current theme to the default (relver).
// This is primarily useful for testing.
func resetTheme() {
	currentTheme = nil
}
