package pipeline

import (
	"io"
)

// DocumentTitle is the fixed <title> of every rendered document.
const DocumentTitle = "Jot Note"

const (
	documentHead = "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\" />\n<title>" + DocumentTitle + "</title>\n"
	documentBody = "</head>\n<body>\n"
	documentEnd  = "</body>\n</html>\n"
)

// errWriter stops writing after the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func (ew *errWriter) writeString(s string) {
	_, _ = io.WriteString(ew, s)
}

// WriteDocument writes a complete HTML document for markdown to w.
//
// A nil stylesheet omits the <style> block; otherwise its bytes are inlined
// verbatim. A leading metadata block is rendered as a table before the body.
func WriteDocument(w io.Writer, conv Converter, markdown string, stylesheet []byte) error {
	meta, body, err := SplitMetadata(NormalizeLineEndings(markdown))
	if err != nil {
		return err
	}

	ew := &errWriter{w: w}
	ew.writeString(documentHead)
	if stylesheet != nil {
		ew.writeString("<style>")
		_, _ = ew.Write(stylesheet)
		ew.writeString("</style>\n")
	}
	ew.writeString(documentBody)
	if ew.err != nil {
		return ew.err
	}

	if err := WriteMetadata(ew, meta); err != nil {
		return err
	}
	if err := conv.Convert(ew, []byte(body)); err != nil {
		return err
	}

	ew.writeString(documentEnd)
	return ew.err
}

// WriteFragment writes only the converted Markdown to w, with no document
// wrapper and no metadata handling.
func WriteFragment(w io.Writer, conv Converter, markdown string) error {
	return conv.Convert(w, []byte(markdown))
}
