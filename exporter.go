package jot

import (
	"context"
	"io"
	"os"

	"github.com/alnah/go-jot/internal/fileutil"
	"github.com/alnah/go-jot/internal/pipeline"
)

// ExportInput contains PDF export parameters.
type ExportInput struct {
	Markdown   string        // Markdown content
	Stylesheet string        // stylesheet path ("" = none)
	SourceDir  string        // base for relative links ("" = leave links alone)
	Page       *PageSettings // page settings (nil = defaults)
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithStdout sets where the stream target writes. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(e *Exporter) {
		e.stdout = w
	}
}

// Exporter renders Markdown to PDF through a headless browser.
type Exporter struct {
	renderer *Renderer
	pdf      pdfRenderer
	stdout   io.Writer
}

// NewExporter creates an Exporter that drives a locally installed browser.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		renderer: NewRenderer(),
		pdf:      &rodRenderer{},
		stdout:   os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders in to a PDF written to target.
//
// The document is rendered and written to a temp file before the target is
// opened, and the target is opened before any browser is located, so a
// Markdown error never starts a browser and an existing destination fails
// fast. If a browser stage fails, a file target is removed. The temp file is
// removed on every path.
func (e *Exporter) Export(ctx context.Context, in ExportInput, target Target) error {
	if err := in.Page.Validate(); err != nil {
		return err
	}

	doc, err := e.renderer.RenderDocument(in.Markdown, in.Stylesheet)
	if err != nil {
		return err
	}
	if doc, err = pipeline.RewriteRelativeLinks(doc, in.SourceDir); err != nil {
		return &RenderError{Err: err}
	}

	tmp, err := fileutil.NewTempFile("html")
	if err != nil {
		return &RenderError{Err: err}
	}
	defer tmp.Release()

	if err := tmp.Write(doc); err != nil {
		return &RenderError{Err: err}
	}

	sink, err := target.Open(e.stdout)
	if err != nil {
		return err
	}

	pdf, err := e.pdf.RenderFromFile(ctx, tmp.Path(), in.Page)
	if err != nil {
		_ = sink.Abort()
		return err
	}

	if _, err := sink.Write(pdf); err != nil {
		_ = sink.Abort()
		return &PathError{Op: "write", Path: target.String(), Err: err}
	}
	if err := sink.Close(); err != nil {
		_ = sink.Abort()
		return err
	}
	return nil
}
