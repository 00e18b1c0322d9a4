// Package jot captures Markdown notes and renders them to HTML or PDF.
//
// # Notes
//
// NoteWriter stores a timestamped note under a base directory:
//
//	w := &jot.NoteWriter{Base: "/home/me/notes/atoms", Generator: "jot 1.0.0"}
//	note, err := w.Write("Call the plumber")
//	// note.Path: /home/me/notes/atoms/2024/03/20240305_141502.md
//
// # Output targets
//
// Resolve turns an output hint into a destination. NoOutput streams to
// standard output, ImplicitOutput places the artifact beside the source and
// ExplicitOutput takes a directory or a file path:
//
//	target, err := jot.Resolve("html", jot.ImplicitOutput(), "notes/plan.md")
//	// target.Path(): <abs>/notes/plan.html
//
// File targets are opened with create-new semantics; an existing file is
// never overwritten.
//
// # HTML
//
//	r := jot.NewRenderer()
//	sink, err := target.Open(os.Stdout)
//	if err != nil {
//	    return err
//	}
//	if err := r.WriteDocument(sink, markdown, "/path/to/jot.css"); err != nil {
//	    sink.Abort()
//	    return err
//	}
//	return sink.Close()
//
// A leading "---" YAML block is rendered as a metadata table before the body.
//
// # PDF
//
// Exporter prints the rendered document with a locally installed
// Chrome-family browser (ROD_BROWSER_BIN overrides discovery):
//
//	err := jot.NewExporter().Export(ctx, jot.ExportInput{
//	    Markdown:  markdown,
//	    SourceDir: "notes",
//	    Page:      &jot.PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.5},
//	}, target)
//
// Errors are *PathError, *RenderError or *ExportError values wrapping the
// package's sentinel errors.
package jot
