package tui

import (
	"github.com/charmbracelet/huh"
)

// runForm is swapped in tests; huh forms need a real terminal.
var runForm = func(form *huh.Form) error {
	return form.Run()
}

// Confirm shows a yes/no confirmation prompt.
func Confirm(title, description string) (bool, error) {
	var confirmed bool
	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := runForm(huh.NewForm(huh.NewGroup(field)).WithTheme(currentThemeOrDefault())); err != nil {
		return false, err
	}
	return confirmed, nil
}

// Input asks for a single line of text, pre-filled with value.
// validate may be nil.
func Input(title, description, value string, validate func(string) error) (string, error) {
	field := huh.NewInput().
		Title(title).
		Description(description).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}

	if err := runForm(huh.NewForm(huh.NewGroup(field)).WithTheme(currentThemeOrDefault())); err != nil {
		return "", err
	}
	return value, nil
}

// Select shows a single-select prompt over the given options.
func Select(title, description string, options []huh.Option[string]) (string, error) {
	var selected string
	field := huh.NewSelect[string]().
		Title(title).
		Description(description).
		Options(options...).
		Value(&selected)

	if err := runForm(huh.NewForm(huh.NewGroup(field)).WithTheme(currentThemeOrDefault())); err != nil {
		return "", err
	}
	return selected, nil
}
