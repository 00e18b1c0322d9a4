package jot

import (
	"bytes"
	"io"
	"os"

	"github.com/alnah/go-jot/internal/pipeline"
)

// Renderer converts Markdown into an HTML fragment or a complete document.
type Renderer struct {
	conv pipeline.Converter
}

// NewRenderer creates a Renderer backed by goldmark.
func NewRenderer() *Renderer {
	return &Renderer{conv: pipeline.NewGoldmarkConverter()}
}

// RenderFragment returns the converted Markdown with no document wrapper
// and no metadata handling.
func (r *Renderer) RenderFragment(markdown string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteFragment(&buf, markdown); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderDocument returns a complete HTML document. stylesheet is a file path
// whose bytes are inlined in a <style> block; an empty path or an unreadable
// file omits the block without error.
func (r *Renderer) RenderDocument(markdown, stylesheet string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteDocument(&buf, markdown, stylesheet); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFragment is RenderFragment writing to w.
func (r *Renderer) WriteFragment(w io.Writer, markdown string) error {
	if err := pipeline.WriteFragment(w, r.conv, markdown); err != nil {
		return &RenderError{Err: err}
	}
	return nil
}

// WriteDocument is RenderDocument writing to w.
func (r *Renderer) WriteDocument(w io.Writer, markdown, stylesheet string) error {
	if err := pipeline.WriteDocument(w, r.conv, markdown, readStylesheet(stylesheet)); err != nil {
		return &RenderError{Err: err}
	}
	return nil
}

// readStylesheet returns the file content, or nil when path is empty or
// the file cannot be read.
func readStylesheet(path string) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- stylesheet path comes from config
	if err != nil {
		return nil
	}
	return data
}
