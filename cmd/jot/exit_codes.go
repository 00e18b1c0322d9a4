package main

import (
	"errors"
	"os"

	jot "github.com/alnah/go-jot"
	"github.com/alnah/go-jot/internal/config"
	"github.com/alnah/go-jot/internal/editor"
	"github.com/alnah/go-jot/internal/hints"
)

// Exit codes for the jot CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Success, including the empty-note abort
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or page settings
	ExitIO      = 3 // Input and output path errors
	ExitBrowser = 4 // Browser/PDF export errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, jot.ErrBrowserNotFound) ||
		errors.Is(err, jot.ErrBrowserConnect) ||
		errors.Is(err, jot.ErrPageCreate) ||
		errors.Is(err, jot.ErrPageLoad) ||
		errors.Is(err, jot.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrNoConfigDir) ||
		errors.Is(err, config.ErrInvalidJumpStyle) ||
		errors.Is(err, config.ErrEmptyEditor) ||
		errors.Is(err, editor.ErrEditorNotFound) ||
		errors.Is(err, editor.ErrEmptyCommand) ||
		errors.Is(err, jot.ErrMalformedMetadata) ||
		errors.Is(err, jot.ErrInvalidPageSize) ||
		errors.Is(err, jot.ErrInvalidOrientation) ||
		errors.Is(err, jot.ErrInvalidMargin) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	var pathErr *jot.PathError
	if errors.As(err, &pathErr) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns the remediation hint printed after err, or "".
// ext is the output extension of the command that failed.
func hintFor(err error, ext string) string {
	switch {
	case errors.Is(err, jot.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, config.ErrConfigNotFound):
		path, _ := config.DefaultPath()
		return hints.ForConfigNotFound(path)
	case errors.Is(err, jot.ErrParentNotFound):
		return hints.ForParentNotFound()
	case errors.Is(err, jot.ErrDestinationExists):
		return hints.ForDestinationExists()
	case errors.Is(err, jot.ErrExtensionMismatch) && ext != "":
		return hints.ForExtensionMismatch(ext)
	case errors.Is(err, jot.ErrMissingSourceForImplicitOutput):
		return hints.ForImplicitOutput()
	case errors.Is(err, editor.ErrEditorNotFound):
		return hints.ForEditorNotFound()
	}
	return ""
}
