package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_ReadWriteStat(t *testing.T) {
	fs := NewOSFileSystem()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "build.gradle")

	if err := fs.WriteFile(ctx, path, []byte("data"), PermOwnerRW); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := fs.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("ReadFile = %q, want %q", got, "data")
	}

	info, err := fs.Stat(ctx, path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != 4 {
		t.Errorf("Size = %d, want 4", info.Size())
	}
}

func TestOSFileSystem_CanceledContext(t *testing.T) {
	fs := NewOSFileSystem()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fs.ReadFile(ctx, "whatever"); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadFile err = %v, want context.Canceled", err)
	}
	if err := fs.WriteFile(ctx, "whatever", nil, PermOwnerRW); !errors.Is(err, context.Canceled) {
		t.Errorf("WriteFile err = %v, want context.Canceled", err)
	}
	if _, err := fs.Stat(ctx, "whatever"); !errors.Is(err, context.Canceled) {
		t.Errorf("Stat err = %v, want context.Canceled", err)
	}
}

func TestMockFileSystem(t *testing.T) {
	ctx := context.Background()
	fs := NewMockFileSystem()

	if _, err := fs.ReadFile(ctx, "/missing"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile missing err = %v, want os.ErrNotExist", err)
	}

	fs.SetFile("/a", []byte("abc"))
	data, err := fs.ReadFile(ctx, "/a")
	if err != nil || string(data) != "abc" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}

	info, err := fs.Stat(ctx, "/a")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Name() != "a" || info.Size() != 3 {
		t.Errorf("Stat = %s/%d", info.Name(), info.Size())
	}

	injected := errors.New("boom")
	fs.ReadErr = injected
	if _, err := fs.ReadFile(ctx, "/a"); !errors.Is(err, injected) {
		t.Errorf("ReadFile err = %v, want injected", err)
	}

	fs.WriteErr = injected
	if err := fs.WriteFile(ctx, "/b", nil, PermOwnerRW); !errors.Is(err, injected) {
		t.Errorf("WriteFile err = %v, want injected", err)
	}
}
