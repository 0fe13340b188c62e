// --- START OF FINAL REVISED FILE internal/testutil/helpers.go ---
package testutil

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// CreateDummyFile creates a dummy file with specified content at the given path,
// ensuring parent directories exist. It uses require assertions for test setup.
func CreateDummyFile(t *testing.T, path string, content string) {
	t.Helper()
	fullPath := filepath.Clean(path)
	dir := filepath.Dir(fullPath)
	err := os.MkdirAll(dir, 0755)
	require.NoError(t, err, "Failed to create directory %s for dummy file", dir)
	err = os.WriteFile(fullPath, []byte(content), 0644)
	require.NoError(t, err, "Failed to write dummy file %s", fullPath)
}

// CreateDummyDir ensures a directory exists at the given path, creating parents if needed.
func CreateDummyDir(t *testing.T, path string) {
	t.Helper()
	fullPath := filepath.Clean(path)
	err := os.MkdirAll(fullPath, 0755)
	require.NoError(t, err, "Failed to create dummy directory %s", fullPath)
}

// NewMemFs returns an in-memory filesystem populated with files, keyed by
// slash-separated path below root.
func NewMemFs(t *testing.T, root string, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(root, 0755))
	for rel, content := range files {
		WriteMemFile(t, fsys, filepath.Join(root, filepath.FromSlash(rel)), content)
	}
	return fsys
}

// WriteMemFile writes content to path on fsys, creating parent directories.
func WriteMemFile(t *testing.T, fsys afero.Fs, path string, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
}

// ReadMemFile returns the content of path on fsys.
func ReadMemFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err, "Failed to read %s", path)
	return string(data)
}

// NewBufferLogger returns a debug-level text handler writing to the returned buffer.
func NewBufferLogger() (slog.Handler, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}), buf
}

// --- END OF FINAL REVISED FILE internal/testutil/helpers.go ---
