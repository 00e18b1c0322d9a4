package jot

import (
	"os"
	"path/filepath"

	"github.com/alnah/go-jot/internal/fileutil"
)

// HintKind distinguishes the three output hint states.
type HintKind int

const (
	HintAbsent   HintKind = iota // no output requested: standard output
	HintImplicit                 // output requested without a path: beside the source
	HintExplicit                 // user-given path: a directory or a file
)

func (k HintKind) String() string {
	switch k {
	case HintImplicit:
		return "implicit"
	case HintExplicit:
		return "explicit"
	default:
		return "absent"
	}
}

// OutputHint is the user's request for where output goes.
// The zero value is NoOutput.
type OutputHint struct {
	kind HintKind
	path string
}

// NoOutput returns the hint for streaming to standard output.
func NoOutput() OutputHint { return OutputHint{} }

// ImplicitOutput returns the hint for writing beside the source file.
func ImplicitOutput() OutputHint { return OutputHint{kind: HintImplicit} }

// ExplicitOutput returns the hint for a user-given directory or file path.
func ExplicitOutput(path string) OutputHint { return OutputHint{kind: HintExplicit, path: path} }

// Kind returns the hint state.
func (h OutputHint) Kind() HintKind { return h.kind }

// Path returns the explicit path, or "" for the other states.
func (h OutputHint) Path() string { return h.path }

// Target is a resolved output destination: standard output or an absolute
// file path whose parent directory existed at resolution time.
// The zero value is the standard output stream.
type Target struct {
	path string
}

// StreamTarget returns the standard output target.
func StreamTarget() Target { return Target{} }

// IsStream reports whether output goes to standard output.
func (t Target) IsStream() bool { return t.path == "" }

// Path returns the absolute destination path, or "" for the stream.
func (t Target) Path() string { return t.path }

func (t Target) String() string {
	if t.IsStream() {
		return "stdout"
	}
	return t.path
}

// Resolve computes the destination for an artifact with the given extension
// (without dot). source is the input file path, "" when reading stdin.
//
// Directories are told apart from file paths by checking the filesystem,
// never by a trailing separator. No directory is ever created. Errors are
// *PathError values wrapping one of the resolution sentinels.
func Resolve(extension string, hint OutputHint, source string) (Target, error) {
	switch hint.kind {
	case HintImplicit:
		if source == "" {
			return Target{}, resolveError("", ErrMissingSourceForImplicitOutput)
		}
		dir, err := canonicalize(filepath.Dir(source))
		if err != nil {
			return Target{}, resolveError(source, err)
		}
		return Target{path: besideSource(dir, source, extension)}, nil

	case HintExplicit:
		return resolveExplicit(extension, hint.path, source)

	default:
		return StreamTarget(), nil
	}
}

func resolveExplicit(extension, p, source string) (Target, error) {
	if p != "" && fileutil.IsDir(p) {
		if source == "" {
			return Target{}, resolveError(p, ErrMissingSourceForImplicitOutput)
		}
		dir, err := canonicalize(p)
		if err != nil {
			return Target{}, resolveError(p, err)
		}
		return Target{path: besideSource(dir, source, extension)}, nil
	}

	parent, name := filepath.Split(p)
	if name == "" || name == "." || name == ".." {
		return Target{}, resolveError(p, ErrMissingFilename)
	}

	if parent == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Target{}, resolveError(p, err)
		}
		parent = wd
	}
	if !fileutil.IsDir(parent) {
		return Target{}, resolveError(p, ErrParentNotFound)
	}
	dir, err := canonicalize(parent)
	if err != nil {
		return Target{}, resolveError(p, err)
	}

	if filepath.Ext(name) != "."+extension {
		return Target{}, resolveError(p, ErrExtensionMismatch)
	}
	return Target{path: filepath.Join(dir, name)}, nil
}

// besideSource names the output after the source file stem.
func besideSource(dir, source, extension string) string {
	return filepath.Join(dir, fileutil.Stem(source)+"."+extension)
}

// canonicalize returns the absolute path with symlinks evaluated. Paths that
// do not exist are only made absolute.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

func resolveError(path string, err error) error {
	return &PathError{Op: "resolve", Path: path, Err: err}
}
