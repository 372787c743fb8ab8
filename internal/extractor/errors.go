package extractor

import (
	"fmt"
	"strings"
)

// FileAccessError indicates that the build script could not be read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Suggestion returns a hint for fixing the failed read.
func (e *FileAccessError) Suggestion() string {
	return fmt.Sprintf("Check that %s exists in the working directory and is readable, or pass --path.", e.Path)
}

// PatternNotFoundError indicates that no declaration block matched.
type PatternNotFoundError struct {
	Path    string
	Pattern string
}

func (e *PatternNotFoundError) Error() string {
	return fmt.Sprintf("no version declaration found in %s", e.Path)
}

// Suggestion shows the expected declaration shape.
func (e *PatternNotFoundError) Suggestion() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "No block matching %s was found in %s.\n\n", e.Pattern, e.Path)
	sb.WriteString("The version must be declared inside a block, for example:\n\n")
	sb.WriteString("  allprojects {\n")
	sb.WriteString("      version '1.2.3'\n")
	sb.WriteString("  }\n")

	return sb.String()
}

// ValidationError indicates that a matched token could not be trimmed to a
// version string.
type ValidationError struct {
	Path   string
	Token  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid version token %q in %s: %s", e.Token, e.Path, e.Reason)
}

// Suggestion explains how the token is expected to look.
func (e *ValidationError) Suggestion() string {
	return "Declare the version as a quoted literal, e.g. version '1.2.3', or use --trim blind to strip any boundary characters."
}
