// Package sink provides output destinations for generated declarations.
// Sinks sit outside the rendering core: they receive finished text and decide
// where and how it is stored.
package sink

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidPath indicates a rejected output path.
	ErrInvalidPath = errors.New("invalid output path")

	// ErrExists indicates a file exists and overwriting is disabled.
	ErrExists = errors.New("file already exists")
)

// OutputSink receives generated file content.
// Implementations MUST be safe for concurrent calls.
type OutputSink interface {
	// WriteFile writes content to the specified path.
	// The path is relative; the sink determines the actual location.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// FilesystemSink writes to a directory on the local filesystem.
type FilesystemSink struct {
	// Root is the base directory for all writes.
	Root string

	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode

	// Overwrite controls behavior for existing files.
	// If false, WriteFile fails with ErrExists when a file exists.
	Overwrite bool
}

// NewFilesystemSink creates a new FilesystemSink writing to the specified root directory.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{
		Root:      root,
		Mode:      0644,
		Overwrite: true,
	}
}

// WriteFile writes content to path within the root directory.
// It creates parent directories as needed and writes atomically via temp file + rename.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.Root, filepath.FromSlash(path))

	// Check for path traversal after resolution
	absRoot, err := filepath.Abs(s.Root)
	if err != nil {
		return errors.Wrap(err, "resolve root directory")
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return errors.Wrap(err, "resolve path")
	}
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return errors.Wrapf(ErrInvalidPath, "path escapes root directory: %q", path)
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create directories")
	}

	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}

	tempFile, err := os.CreateTemp(dir, ".tsdecl-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tempPath := tempFile.Name()
	cleanup := func() { _ = os.Remove(tempPath) }

	_, writeErr := tempFile.Write(content)
	closeErr := tempFile.Close()
	if writeErr != nil {
		cleanup()
		return errors.Wrap(writeErr, "write temp file")
	}
	if closeErr != nil {
		cleanup()
		return errors.Wrap(closeErr, "close temp file")
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		cleanup()
		return errors.Wrap(err, "set file mode")
	}

	if err := ctx.Err(); err != nil {
		cleanup()
		return err
	}

	if s.Overwrite {
		if err := os.Rename(tempPath, fullPath); err != nil {
			cleanup()
			return errors.Wrap(err, "rename temp file")
		}
		return nil
	}

	// os.Link fails atomically if the target exists, avoiding a stat+rename race.
	if err := os.Link(tempPath, fullPath); err != nil {
		cleanup()
		if errors.Is(err, os.ErrExist) {
			return errors.Wrapf(ErrExists, "%q", path)
		}
		return errors.Wrap(err, "create file")
	}
	cleanup()
	return nil
}

// MemorySink stores generated files in memory.
// All operations are thread-safe.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink creates a new MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		files: make(map[string][]byte),
	}
}

// WriteFile stores a copy of content under path.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	contentCopy := make([]byte, len(content))
	copy(contentCopy, content)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[path] = contentCopy
	return nil
}

// Files returns a copy of all written files.
func (s *MemorySink) Files() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]byte, len(s.files))
	for path, content := range s.files {
		contentCopy := make([]byte, len(content))
		copy(contentCopy, content)
		result[path] = contentCopy
	}
	return result
}

// Get returns the content of a single file, or nil if not found.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[path]
	if !ok {
		return nil
	}
	contentCopy := make([]byte, len(content))
	copy(contentCopy, content)
	return contentCopy
}

// Reset clears all stored files.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = make(map[string][]byte)
}

// ValidatePath checks if a path is valid for output.
// Paths MUST be relative (no leading /), use / as separator,
// not contain .. components, and be clean (no ./, duplicate /).
func ValidatePath(path string) error {
	if path == "" {
		return errors.Wrap(ErrInvalidPath, "path is empty")
	}

	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return errors.Wrapf(ErrInvalidPath, "absolute paths not allowed: %q", path)
	}

	// Windows drive letters (C:, D:, etc.) even on Unix
	if len(path) >= 2 && path[1] == ':' && ((path[0] >= 'A' && path[0] <= 'Z') || (path[0] >= 'a' && path[0] <= 'z')) {
		return errors.Wrapf(ErrInvalidPath, "absolute paths not allowed: %q", path)
	}

	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return errors.Wrapf(ErrInvalidPath, "path traversal not allowed: %q", path)
		}
	}

	cleaned := filepath.ToSlash(filepath.Clean(path))
	if cleaned != filepath.ToSlash(path) {
		return errors.Wrapf(ErrInvalidPath, "path is not clean (expected %q, got %q)", cleaned, path)
	}

	return nil
}
