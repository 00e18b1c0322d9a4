package jot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-jot/internal/dateutil"
	"github.com/alnah/go-jot/internal/fileutil"
)

// Note is a note file written to disk. It is never modified afterwards.
type Note struct {
	Path    string
	Content string
	Created time.Time
}

// NoteWriter creates timestamped notes under Base.
type NoteWriter struct {
	Base      string           // directory notes are stored under (root/subdir)
	Generator string           // generated-by value, e.g. "jot 1.0.0"
	Now       func() time.Time // clock; nil means time.Now
}

// Write creates a note holding text at Base/YYYY/MM/YYYYMMDD_HHMMSS.md.
// Missing directories are created. A note written in the same second as an
// existing one replaces it.
func (w *NoteWriter) Write(text string) (*Note, error) {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	created := now()

	note := &Note{
		Path:    NotePath(w.Base, created),
		Content: FormatNote(text, created, w.Generator),
		Created: created,
	}

	if err := os.MkdirAll(filepath.Dir(note.Path), fileutil.DirPermissions); err != nil {
		return nil, &PathError{Op: "create", Path: filepath.Dir(note.Path), Err: err}
	}
	// #nosec G306 -- notes are ordinary user documents
	if err := os.WriteFile(note.Path, []byte(note.Content), fileutil.FilePermissions); err != nil {
		return nil, &PathError{Op: "create", Path: note.Path, Err: err}
	}
	return note, nil
}

// NotePath returns where a note created at t is stored under base.
func NotePath(base string, t time.Time) string {
	dir := dateutil.MustFormat(t, dateutil.NoteDirFormat)
	name := dateutil.MustFormat(t, dateutil.NoteFileFormat) + "." + NoteExtension
	return filepath.Join(base, filepath.FromSlash(dir), name)
}

// FormatNote returns the note file content: a front-matter block with the
// creation timestamp and generator, a blank line, then the trimmed body.
// A non-empty body that does not start with "#" becomes a level-one heading.
func FormatNote(text string, created time.Time, generator string) string {
	body := strings.TrimSpace(text)
	if body != "" && !strings.HasPrefix(body, "#") {
		body = "# " + body
	}
	return fmt.Sprintf("---\ntimestamp: %s\ngenerated-by: %s\n---\n\n%s\n",
		dateutil.MustFormat(created, dateutil.TimestampFormat), generator, body)
}
