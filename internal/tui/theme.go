package tui

import (
	"github.com/charmbracelet/huh"
)

// currentTheme holds the theme used by the prompts in this package.
// When nil, the gradle theme is used.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Unknown or empty names select the default theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return gradleTheme()
	}
	return currentTheme
}

// resetTheme is used by tests.
func resetTheme() {
	currentTheme = nil
}
