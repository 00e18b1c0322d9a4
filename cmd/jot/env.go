package main

import (
	"context"
	"io"
	"os"
	"time"

	jot "github.com/alnah/go-jot"
	"github.com/alnah/go-jot/internal/editor"
)

// pdfExporter is the part of *jot.Exporter the pdf command uses.
type pdfExporter interface {
	Export(ctx context.Context, in jot.ExportInput, target jot.Target) error
}

// Compile-time interface implementation check.
var _ pdfExporter = (*jot.Exporter)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now      func() time.Time
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Exporter pdfExporter

	// OpenEditor opens path in the configured editor and waits for it.
	OpenEditor func(ctx context.Context, command string, jump editor.JumpMode, path string) error
}

// DefaultEnv returns the production environment attached to the terminal.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Exporter:   jot.NewExporter(jot.WithStdout(os.Stdout)),
		OpenEditor: openEditor,
	}
}

func openEditor(ctx context.Context, command string, jump editor.JumpMode, path string) error {
	e := &editor.Editor{Command: command, Jump: jump}
	return e.Open(ctx, path)
}
