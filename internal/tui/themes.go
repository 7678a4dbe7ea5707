package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ValidThemes is the list of supported theme names.
var ValidThemes = []string{
	"relver",
	"base",
	"base16",
	"catppuccin",
	"charm",
	"dracula",
}

// IsValidTheme returns true if the given theme name is valid.
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// GetTheme returns the huh.Theme for the given theme name.
// Returns nil if the theme name is not recognized.
func GetTheme(name string) *huh.Theme {
	switch name {
	case "relver":
		return relverTheme()
	case "base":
		return huh.ThemeBase()
	case "base16":
		return huh.ThemeBase16()
	case "catppuccin":
		return huh.ThemeCatppuccin()
	case "charm":
		return huh.ThemeCharm()
	case "dracula":
		return huh.ThemeDracula()
	default:
		return nil
	}
}

// relverTheme is the default prompt theme: a cyan-accented variant of
// the base theme that stays readable on light and dark backgrounds.
func relverTheme() *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.Color("36")
	if HasDarkBackground() {
		accent = lipgloss.Color("86")
	}

	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(accent)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
	t.Blurred.Title = t.Blurred.Title.Faint(true)

	return t
}
