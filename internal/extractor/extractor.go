package extractor

import (
	"bytes"
	"context"
	"regexp"

	"github.com/gradlever/gradlever/internal/core"
)

// DefaultPath is the build script read when no path is configured.
const DefaultPath = "build.gradle"

// DeclarationPattern matches a block opener followed by a version line:
// keyword, whitespace, "{", whitespace, "version", whitespace, then the
// literal up to (not including) the next whitespace character that ends the
// match. Group 1 is the raw, still quoted, literal.
const DeclarationPattern = `\w+\s+\{\s+version\s+(.+)\s`

// declarationRegex is compiled once and only read afterwards.
var declarationRegex = regexp.MustCompile(DeclarationPattern)

// Result is the outcome of a successful extraction.
type Result struct {
	// Version is the trimmed version string.
	Version string

	// Token is the captured literal before trimming.
	Token string

	// Path is the file the version was read from.
	Path string

	// Offset is the byte offset of the token within the file.
	Offset int
}

// Extractor reads version declarations from build scripts.
type Extractor struct {
	fs   core.FileSystem
	mode TrimMode
}

// NewExtractor creates an Extractor. An invalid or empty mode falls back to
// TrimQuoted.
func NewExtractor(fs core.FileSystem, mode TrimMode) *Extractor {
	if !mode.IsValid() {
		mode = TrimQuoted
	}
	return &Extractor{fs: fs, mode: mode}
}

// Mode returns the trim mode in use.
func (e *Extractor) Mode() TrimMode {
	return e.mode
}

// Extract reads the file at path and returns its declared version.
func (e *Extractor) Extract(ctx context.Context, path string) (*Result, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := e.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	return e.ExtractBytes(path, data)
}

// ExtractBytes runs the pattern search and trimming over in-memory source
// text. name is only used to label results and errors.
func (e *Extractor) ExtractBytes(name string, data []byte) (*Result, error) {
	loc := declarationRegex.FindSubmatchIndex(data)
	if loc == nil {
		return nil, &PatternNotFoundError{Path: name, Pattern: DeclarationPattern}
	}

	start, end := loc[2], loc[3]
	raw := data[start:end]
	// The group is greedy up to the last whitespace before the newline, so
	// the CR of CRLF scripts ends up inside it. Quoted mode also drops
	// trailing blanks; blind mode keeps them and trims by position only.
	raw = bytes.TrimRight(raw, trailingCutset(e.mode))
	token := string(raw)

	version, reason := trim(token, e.mode)
	if reason != "" {
		return nil, &ValidationError{Path: name, Token: token, Reason: reason}
	}

	return &Result{
		Version: version,
		Token:   token,
		Path:    name,
		Offset:  start,
	}, nil
}

func trailingCutset(mode TrimMode) string {
	if mode == TrimBlind {
		return "\r"
	}
	return " \t\r"
}

// ExtractVersion is a convenience method that returns just the version string.
func (e *Extractor) ExtractVersion(ctx context.Context, path string) (string, error) {
	result, err := e.Extract(ctx, path)
	if err != nil {
		return "", err
	}
	return result.Version, nil
}
