package tui

import (
	"errors"
	"os"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func TestIsValidTheme(t *testing.T) {
	for _, name := range ValidThemes {
		if !IsValidTheme(name) {
			t.Errorf("IsValidTheme(%q) = false, want true", name)
		}
		if GetTheme(name) == nil {
			t.Errorf("GetTheme(%q) returned nil", name)
		}
	}

	for _, name := range []string{"", "solarized", "neon"} {
		if IsValidTheme(name) {
			t.Errorf("IsValidTheme(%q) = true, want false", name)
		}
		if GetTheme(name) != nil {
			t.Errorf("GetTheme(%q) should be nil", name)
		}
	}
}

func TestGradleTheme(t *testing.T) {
	theme := gradleTheme()

	if !theme.Focused.Title.GetBold() {
		t.Error("Focused.Title should be bold")
	}
	if theme.Focused.Base.GetBorderStyle() != lipgloss.RoundedBorder() {
		t.Error("Focused.Base should have rounded border")
	}
	if theme.Blurred.Base.GetBorderStyle() != lipgloss.HiddenBorder() {
		t.Error("Blurred.Base should have hidden border")
	}
	_, right, _, left := theme.Focused.FocusedButton.GetPadding()
	if left != 1 || right != 1 {
		t.Errorf("FocusedButton padding = %d/%d, want 1/1", left, right)
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(resetTheme)

	SetTheme("dracula")
	if currentTheme == nil {
		t.Fatal("expected theme to be set")
	}

	SetTheme("unknown")
	if currentTheme != nil {
		t.Error("unknown theme should reset to default")
	}
	if currentThemeOrDefault() == nil {
		t.Error("currentThemeOrDefault should never be nil")
	}
}

func stubRunForm(t *testing.T, err error) {
	t.Helper()
	orig := runForm
	runForm = func(*huh.Form) error { return err }
	t.Cleanup(func() { runForm = orig })
}

func TestPrompts(t *testing.T) {
	t.Run("input keeps prefilled value", func(t *testing.T) {
		stubRunForm(t, nil)
		got, err := Input("Path", "", "build.gradle", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "build.gradle" {
			t.Errorf("got %q, want build.gradle", got)
		}
	})

	t.Run("confirm defaults to false", func(t *testing.T) {
		stubRunForm(t, nil)
		got, err := Confirm("Overwrite?", "")
		if err != nil || got {
			t.Errorf("Confirm = %v, %v; want false, nil", got, err)
		}
	})

	t.Run("errors are propagated", func(t *testing.T) {
		stubRunForm(t, huh.ErrUserAborted)
		if _, err := Confirm("x", ""); !errors.Is(err, huh.ErrUserAborted) {
			t.Errorf("Confirm err = %v", err)
		}
		if _, err := Input("x", "", "", nil); !errors.Is(err, huh.ErrUserAborted) {
			t.Errorf("Input err = %v", err)
		}
		if _, err := Select("x", "", huh.NewOptions("a", "b")); !errors.Is(err, huh.ErrUserAborted) {
			t.Errorf("Select err = %v", err)
		}
	})
}

func TestIsInteractive(t *testing.T) {
	orig := isTerminalFn
	t.Cleanup(func() { isTerminalFn = orig })

	isTerminalFn = func(int) bool { return false }
	if IsInteractive() {
		t.Error("non-terminal stdout should not be interactive")
	}

	isTerminalFn = func(int) bool { return true }
	for _, env := range ciEnvs {
		t.Setenv(env, "")
	}
	if !IsInteractive() {
		t.Error("terminal without CI should be interactive")
	}

	t.Setenv("CI", "true")
	if IsInteractive() {
		t.Error("CI environment should not be interactive")
	}

	if !IsTTY(os.Stderr) {
		t.Error("IsTTY should use the stubbed check")
	}
}
