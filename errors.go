package jot

import (
	"errors"

	"github.com/alnah/go-jot/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Source validation errors.
	ErrNotMarkdown = errors.New("input is not a markdown (.md) file")

	// Output resolution errors.
	ErrMissingSourceForImplicitOutput = errors.New("output location requires a source file")
	ErrMissingFilename                = errors.New("output path has no file name")
	ErrParentNotFound                 = errors.New("output directory does not exist")
	ErrExtensionMismatch              = errors.New("output file extension does not match")
	ErrDestinationExists              = errors.New("output file already exists")

	// Rendering errors.
	ErrMalformedMetadata = pipeline.ErrMalformedMetadata
	ErrHTMLConversion    = pipeline.ErrHTMLConversion

	// Export errors.
	ErrBrowserNotFound = errors.New("no Chrome-like browser found")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
	ErrPDFGeneration   = errors.New("PDF generation failed")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)

// PathError records a failure to resolve, open or write an input or output path.
type PathError struct {
	Op   string // "read", "resolve", "open", "write", "create"
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

// RenderError records a failure while producing HTML, before any browser
// is started.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "rendering document: " + e.Err.Error() }

func (e *RenderError) Unwrap() error { return e.Err }

// ExportError records a failure in a browser stage of PDF export.
type ExportError struct {
	Op  string // "locate", "launch", "connect", "open page", "load page", "print"
	Err error
}

func (e *ExportError) Error() string { return "exporting PDF: " + e.Op + ": " + e.Err.Error() }

func (e *ExportError) Unwrap() error { return e.Err }
