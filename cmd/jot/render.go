package main

import (
	"context"
	"fmt"
	"path/filepath"

	jot "github.com/alnah/go-jot"
)

// runHTML renders markdown to an HTML document or, with --raw, a fragment.
// The sink is opened before the input is read so a bad destination fails
// first; any later failure aborts it.
func runHTML(args []string, env *Environment) error {
	f, err := parseHTMLFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f.common.config)
	if err != nil {
		return err
	}

	target, err := resolveTarget("html", &f.renderFlags)
	if err != nil {
		return err
	}
	sink, err := target.Open(env.Stdout)
	if err != nil {
		return err
	}

	markdown, err := readInput(f.input, env)
	if err != nil {
		_ = sink.Abort()
		return err
	}

	r := jot.NewRenderer()
	if f.raw {
		err = r.WriteFragment(sink, markdown)
	} else {
		if f.common.verbose && cfg.CSS != "" {
			fmt.Fprintf(env.Stderr, "Stylesheet: %s\n", cfg.CSS)
		}
		err = r.WriteDocument(sink, markdown, cfg.CSS)
	}
	if err != nil {
		_ = sink.Abort()
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}

	if f.common.verbose {
		fmt.Fprintf(env.Stderr, "Wrote %s\n", target)
	}
	return nil
}

// runPDF renders markdown to PDF. Page settings come from the flags, then
// the [pdf] config table, then the defaults.
func runPDF(ctx context.Context, args []string, env *Environment) error {
	f, err := parsePDFFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f.common.config)
	if err != nil {
		return err
	}
	page, err := buildPageSettings(f, cfg.PDF.PageSize, cfg.PDF.Orientation, cfg.PDF.Margin)
	if err != nil {
		return err
	}

	target, err := resolveTarget("pdf", &f.renderFlags)
	if err != nil {
		return err
	}
	markdown, err := readInput(f.input, env)
	if err != nil {
		return err
	}

	// Relative links in stdin input resolve against the working directory.
	sourceDir := "."
	if f.input != "" {
		sourceDir = filepath.Dir(f.input)
	}

	if f.common.verbose {
		fmt.Fprintf(env.Stderr, "Exporting %s %s, margin %.2fin\n", page.Size, page.Orientation, page.Margin)
	}
	in := jot.ExportInput{
		Markdown:   markdown,
		Stylesheet: cfg.CSS,
		SourceDir:  sourceDir,
		Page:       page,
	}
	if err := env.Exporter.Export(ctx, in, target); err != nil {
		return err
	}

	if f.common.verbose {
		fmt.Fprintf(env.Stderr, "Wrote %s\n", target)
	}
	return nil
}

// resolveTarget checks the input extension, then resolves the output hint.
func resolveTarget(ext string, f *renderFlags) (jot.Target, error) {
	if f.input != "" {
		if err := jot.CheckSource(f.input); err != nil {
			return jot.Target{}, err
		}
	}
	return jot.Resolve(ext, f.output.hint, f.input)
}

// readInput reads the input file, or stdin when path is empty.
func readInput(path string, env *Environment) (string, error) {
	if path == "" {
		return jot.ReadMarkdown(env.Stdin)
	}
	return jot.ReadSource(path)
}

// buildPageSettings merges flag values over config values.
func buildPageSettings(f *pdfFlags, size, orientation string, margin float64) (*jot.PageSettings, error) {
	if f.pageSize != "" {
		size = f.pageSize
	}
	if f.orientation != "" {
		orientation = f.orientation
	}
	page, err := jot.NewPageSettings(size, orientation, margin)
	if err != nil {
		return nil, err
	}
	if f.marginSet {
		page.Margin = f.margin
		if err := page.Validate(); err != nil {
			return nil, err
		}
	}
	return page, nil
}
