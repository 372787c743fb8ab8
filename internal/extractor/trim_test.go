package extractor

import (
	"strings"
	"testing"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		token   string
		mode    TrimMode
		want    string
		wantErr bool
	}{
		{"'1.2.3'", TrimQuoted, "1.2.3", false},
		{`"1.2.3"`, TrimQuoted, "1.2.3", false},
		{"''", TrimQuoted, "", false},
		{"", TrimQuoted, "", true},
		{"", TrimBlind, "", true},
		{"'", TrimQuoted, "", true},
		{"x", TrimBlind, "", true},
		{"ab", TrimBlind, "", false},
		{"abc", TrimBlind, "b", false},
		{"1.2.3", TrimQuoted, "", true},
		{`'1.2.3"`, TrimQuoted, "", true},
		{"«1.0»", TrimBlind, "1.0", false},
		{"é", TrimBlind, "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.token, func(t *testing.T) {
			got, reason := trim(tt.token, tt.mode)
			if tt.wantErr {
				if reason == "" {
					t.Errorf("trim(%q) expected rejection, got %q", tt.token, got)
				}
				return
			}
			if reason != "" {
				t.Fatalf("trim(%q) rejected: %s", tt.token, reason)
			}
			if got != tt.want {
				t.Errorf("trim(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseTrimMode(t *testing.T) {
	tests := []struct {
		input   string
		want    TrimMode
		wantErr bool
	}{
		{"", TrimQuoted, false},
		{"quoted", TrimQuoted, false},
		{"blind", TrimBlind, false},
		{"loose", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTrimMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTrimMode(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTrimMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTrimMode_ErrorListsModes(t *testing.T) {
	_, err := ParseTrimMode("loose")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, mode := range ValidTrimModes {
		if !strings.Contains(err.Error(), mode) {
			t.Errorf("error %q does not list %q", err, mode)
		}
	}
}
