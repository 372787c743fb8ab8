// Package printer renders styled diagnostics.
//
// Diagnostics go to stderr by default so that stdout carries nothing but the
// extracted version line.
package printer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/gradlever/gradlever/internal/tui"
	"github.com/muesli/termenv"
)

// renderer is bound to stderr so the color profile follows the stream the
// diagnostics are written to, not stdout.
var renderer = lipgloss.NewRenderer(os.Stderr)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = renderer.NewStyle().Faint(true)
	boldStyle    = renderer.NewStyle().Bold(true)
	successStyle = renderer.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = renderer.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = renderer.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = renderer.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

var (
	// output is where Print* functions write. nil means os.Stderr, resolved
	// at call time.
	output io.Writer

	defaultProfile = renderer.ColorProfile()

	// isTTYFn is swapped in tests.
	isTTYFn = tui.IsTTY
)

// SetOutput redirects Print* output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	output = w
}

func writer() io.Writer {
	if output == nil {
		return os.Stderr
	}
	return output
}

// SetNoColor disables or restores colored output.
func SetNoColor(disabled bool) {
	if disabled {
		renderer.SetColorProfile(termenv.Ascii)
		return
	}
	renderer.SetColorProfile(defaultProfile)
}

// ConfigureColor disables color when requested by flag, when NO_COLOR is set,
// or when f is not a terminal.
func ConfigureColor(noColor bool, f *os.File) {
	SetNoColor(colorDisabled(noColor, f))
}

func colorDisabled(noColor bool, f *os.File) bool {
	if noColor {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return !isTTYFn(f)
}

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return infoStyle.Render(text)
}

// Print functions write styled text with a newline.

// PrintFaint prints text with faint styling.
func PrintFaint(text string) {
	fmt.Fprintln(writer(), Faint(text))
}

// PrintSuccess prints text with success (green) styling.
func PrintSuccess(text string) {
	fmt.Fprintln(writer(), Success(text))
}

// PrintError prints text with error (red) styling.
func PrintError(text string) {
	fmt.Fprintln(writer(), Error(text))
}

// PrintWarning prints text with warning (yellow) styling.
func PrintWarning(text string) {
	fmt.Fprintln(writer(), Warning(text))
}

// PrintInfo prints text with info (cyan) styling.
func PrintInfo(text string) {
	fmt.Fprintln(writer(), Info(text))
}

// suggester is implemented by errors that carry a fix-it hint.
type suggester interface {
	Suggestion() string
}

// PrintFailure prints err in red, followed by a faint hint when any error in
// its chain provides one.
func PrintFailure(err error) {
	if err == nil {
		return
	}
	PrintError("Error: " + err.Error())

	var s suggester
	if errors.As(err, &s) {
		fmt.Fprintln(writer())
		PrintFaint(s.Suggestion())
	}
}
