package jot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// NoteExtension is the extension of notes and the only accepted input
// extension for conversion.
const NoteExtension = "md"

// CheckSource verifies that path names a Markdown file by extension.
// The comparison is exact: "notes.MD" is rejected.
func CheckSource(path string) error {
	if filepath.Ext(path) != "."+NoteExtension {
		return &PathError{Op: "read", Path: path, Err: ErrNotMarkdown}
	}
	return nil
}

// ReadSource checks and reads the Markdown file at path.
func ReadSource(path string) (string, error) {
	if err := CheckSource(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", &PathError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

// ReadMarkdown reads Markdown from r, typically standard input.
func ReadMarkdown(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading markdown: %w", err)
	}
	return string(data), nil
}
