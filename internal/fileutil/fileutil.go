// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrTempFileReleased       = errors.New("temp file already released")
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---
	FilePermissions = 0o644 // rw-r--r--
)

// TempFile is an exclusively owned temporary file. Acquire it with
// NewTempFile and release it with a deferred Release; Release removes the
// file and is safe to call more than once.
type TempFile struct {
	path     string
	released bool
}

// NewTempFile creates a uniquely named, empty temporary file with the given
// extension. The file is closed; callers write through Write.
func NewTempFile(extension string) (*TempFile, error) {
	if err := ValidateExtension(extension); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "jot-*."+extension)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	t := &TempFile{path: f.Name()}

	if err := f.Close(); err != nil {
		t.Release()
		return nil, fmt.Errorf("closing temp file: %w", err)
	}
	return t, nil
}

// Path returns the absolute path of the temporary file.
func (t *TempFile) Path() string {
	return t.path
}

// Write replaces the file content with data.
func (t *TempFile) Write(data []byte) error {
	if t.released {
		return ErrTempFileReleased
	}
	// #nosec G306 -- the browser process must be able to read the file
	if err := os.WriteFile(t.path, data, FilePermissions); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	return nil
}

// Release removes the file. Errors are ignored: the file lives in the
// system temp directory and a failed removal is not actionable.
func (t *TempFile) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true
	_ = os.Remove(t.path)
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// CreateNew opens path for writing, failing with an error matching
// os.ErrExist if the file already exists.
func CreateNew(path string) (*os.File, error) {
	// #nosec G304 -- destination path is resolved from user input on purpose
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePermissions)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsDir returns true if the path exists and is a directory. Symlinks are followed.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths such as "~user/x" are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Stem returns the file name of path without its final extension.
// Dot files such as ".notes" keep their full name.
func Stem(path string) string {
	base := filepath.Base(path)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		return stem
	}
	return base
}

// FileURL returns the file:// URL for an absolute path. Windows drive paths
// get a leading slash (file:///C:/notes/a.md).
func FileURL(path string) *url.URL {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return &url.URL{Scheme: "file", Path: p}
}
