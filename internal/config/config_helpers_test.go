package config

import (
	"os"
	"path/filepath"
	"testing"
)

/* ------------------------------------------------------------------------- */
/* HELPERS                                                                   */
/* ------------------------------------------------------------------------- */

// runInTempDir runs fn with the working directory set to the directory of tmpPath.
func runInTempDir(t *testing.T, tmpPath string, fn func()) {
	t.Helper()

	origDir, err := os.Getwd()
	if err != nil {
		origDir = os.TempDir()
		if chErr := os.Chdir(origDir); chErr != nil {
			t.Fatalf("failed to chdir to temp dir: %v", chErr)
		}
	}

	targetDir := filepath.Dir(tmpPath)
	if err := os.Chdir(targetDir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", targetDir, err)
	}
	defer func() { _ = os.Chdir(origDir) }()
	fn()
}

func checkError(t *testing.T, err error, wantErr bool) {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("expected err=%v, got err=%v", wantErr, err)
	}
}

func checkConfigNil(t *testing.T, cfg *Config, wantNil bool) {
	t.Helper()
	if wantNil && cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
	if !wantNil && cfg == nil {
		t.Fatal("expected non-nil config, got nil")
	}
}

func checkConfigPath(t *testing.T, cfg *Config, wantPath string) {
	t.Helper()
	if cfg.Path != wantPath {
		t.Errorf("expected path %q, got %q", wantPath, cfg.Path)
	}
}
