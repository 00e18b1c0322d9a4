package pipeline

import (
	"errors"
	"fmt"
	"io"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HighlightStyle is the chroma style used for fenced code blocks.
const HighlightStyle = "github"

// Converter renders Markdown to an HTML fragment.
type Converter interface {
	Convert(w io.Writer, markdown []byte) error
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM, footnotes and
// syntax highlighting. Highlighting uses inline styles so documents stay
// self-contained without a stylesheet.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(HighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Raw HTML in notes is dropped: WithUnsafe is not set.
		),
	)
	return &GoldmarkConverter{md: md}
}

// Convert writes the HTML fragment for markdown to w.
func (c *GoldmarkConverter) Convert(w io.Writer, markdown []byte) error {
	if err := c.md.Convert(markdown, w); err != nil {
		return fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return nil
}
