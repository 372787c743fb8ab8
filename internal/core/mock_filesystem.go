package core

import (
	"context"
	"io/fs"
	"os"
	"path"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// The *Err fields, when set, are returned by the matching operation.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte

	ReadErr  error
	WriteErr error
	StatErr  error
}

// NewMockFileSystem returns an empty in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{files: make(map[string][]byte)}
}

// SetFile stores content at path.
func (m *MockFileSystem) SetFile(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = content
}

// GetFile returns the content stored at path.
func (m *MockFileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

func (m *MockFileSystem) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, name string, data []byte, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.SetFile(name, append([]byte(nil), data...))
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.StatErr != nil {
		return nil, m.StatErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return mockFileInfo{name: path.Base(name), size: int64(len(data))}, nil
}

var _ FileSystem = (*MockFileSystem)(nil)

type mockFileInfo struct {
	name string
	size int64
}

func (i mockFileInfo) Name() string       { return i.name }
func (i mockFileInfo) Size() int64        { return i.size }
func (i mockFileInfo) Mode() os.FileMode  { return PermPublicRead }
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return false }
func (i mockFileInfo) Sys() any           { return nil }
