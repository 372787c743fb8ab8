// Package testutils holds helpers shared by gradlever tests.
package testutils

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// WriteTempFile writes content to dir/name and returns the full path.
func WriteTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteTempConfig writes a .gradlever.yaml into a fresh temp dir and returns
// its path.
func WriteTempConfig(t *testing.T, content string) string {
	t.Helper()
	return WriteTempFile(t, t.TempDir(), ".gradlever.yaml", content)
}

// WriteTempBuildScript writes a build.gradle into dir and returns its path.
func WriteTempBuildScript(t *testing.T, dir, content string) string {
	t.Helper()
	return WriteTempFile(t, dir, "build.gradle", content)
}

// CaptureStdout runs fn and returns everything written to os.Stdout.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stdout, fn)
}

// CaptureStderr runs fn and returns everything written to os.Stderr.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stderr, fn)
}

func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	orig := *target
	*target = w
	defer func() { *target = orig }()

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	_ = w.Close()
	out := <-done
	_ = r.Close()
	return out
}

// Chdir changes the working directory to dir and restores it when the test
// ends (equivalent of testing.T.Chdir, which needs Go 1.24).
func Chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}
