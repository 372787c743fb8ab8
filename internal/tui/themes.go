package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ValidThemes is the list of supported theme names.
var ValidThemes = []string{
	"gradle",
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
	case "gradle":
		return gradleTheme()
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

// gradleTheme is the default prompt theme, built on huh's base theme with
// Gradle's teal accent.
func gradleTheme() *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.AdaptiveColor{Light: "#02303A", Dark: "#1BA8CB"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	t.Focused.Base = t.Focused.Base.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(accent)
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accent)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("15")).
		Background(accent).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Padding(0, 1)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
