package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gradlever/gradlever/internal/extractor"
	"github.com/gradlever/gradlever/internal/tui"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{"text", "json"}

// Validate checks that every field of cfg holds a supported value.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Path) == "" {
		errs = append(errs, errors.New("path must not be empty"))
	}

	if _, err := extractor.ParseTrimMode(c.Trim); err != nil {
		errs = append(errs, err)
	}

	if c.Format != "" && !slices.Contains(ValidFormats, c.Format) {
		errs = append(errs, fmt.Errorf("invalid format %q (expected one of: %s)", c.Format, strings.Join(ValidFormats, ", ")))
	}

	if c.Theme != "" && !tui.IsValidTheme(c.Theme) {
		errs = append(errs, fmt.Errorf("invalid theme %q (expected one of: %s)", c.Theme, strings.Join(tui.ValidThemes, ", ")))
	}

	return errors.Join(errs...)
}
