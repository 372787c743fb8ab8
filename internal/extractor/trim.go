package extractor

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TrimMode controls how the captured token is reduced to a version string.
type TrimMode string

const (
	// TrimQuoted strips the first and last character only when both are the
	// same quote character.
	TrimQuoted TrimMode = "quoted"

	// TrimBlind strips the first and last character whatever they are.
	TrimBlind TrimMode = "blind"
)

// ValidTrimModes lists the accepted trim mode names.
var ValidTrimModes = []string{string(TrimQuoted), string(TrimBlind)}

// String returns the string representation of the mode.
func (m TrimMode) String() string {
	return string(m)
}

// IsValid returns true if the mode is a known trim mode.
func (m TrimMode) IsValid() bool {
	switch m {
	case TrimQuoted, TrimBlind:
		return true
	default:
		return false
	}
}

// ParseTrimMode converts a string to a TrimMode. An empty string selects
// TrimQuoted.
func ParseTrimMode(s string) (TrimMode, error) {
	if s == "" {
		return TrimQuoted, nil
	}
	m := TrimMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid trim mode %q (expected one of: %s)", s, strings.Join(ValidTrimModes, ", "))
	}
	return m, nil
}

// minTokenLength is the shortest token that survives trimming one character
// from each end.
const minTokenLength = 2

// trim removes one character from each end of token. Characters are runes,
// so a multi-byte boundary character is removed whole. The returned reason is
// non-empty when the token is rejected.
func trim(token string, mode TrimMode) (string, string) {
	if utf8.RuneCountInString(token) < minTokenLength {
		return "", "captured version token too short to trim"
	}

	first, firstSize := utf8.DecodeRuneInString(token)
	last, lastSize := utf8.DecodeLastRuneInString(token)
	if mode == TrimQuoted {
		if first != '\'' && first != '"' {
			return "", "version literal is not quoted"
		}
		if first != last {
			return "", "version literal has mismatched quotes"
		}
	}

	return token[firstSize : len(token)-lastSize], ""
}
