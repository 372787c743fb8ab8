package show

import (
	"fmt"

	"github.com/gradlever/gradlever/internal/extractor"
	"github.com/tidwall/sjson"
)

// OutputFormat controls how the extracted version is written.
type OutputFormat string

const (
	// FormatText writes the bare version string.
	FormatText OutputFormat = "text"

	// FormatJSON writes a single-line JSON object.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a string to OutputFormat, falling back to text.
func ParseOutputFormat(s string) OutputFormat {
	if s == string(FormatJSON) {
		return FormatJSON
	}
	return FormatText
}

// FormatResult renders result as exactly one line, without the trailing
// newline.
func FormatResult(format OutputFormat, result *extractor.Result) (string, error) {
	if format != FormatJSON {
		return result.Version, nil
	}

	line, err := sjson.Set("", "version", result.Version)
	if err != nil {
		return "", fmt.Errorf("failed to encode version: %w", err)
	}
	line, err = sjson.Set(line, "path", result.Path)
	if err != nil {
		return "", fmt.Errorf("failed to encode path: %w", err)
	}
	return line, nil
}
