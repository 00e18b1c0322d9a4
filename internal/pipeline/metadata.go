package pipeline

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/alnah/go-jot/internal/yamlutil"
)

// ErrMalformedMetadata indicates a closed metadata block that is not a YAML mapping.
var ErrMalformedMetadata = errors.New("malformed metadata block")

// Metadata block markers. A block opens with "---" on the first line and
// closes with "---" or "...".
const (
	metadataOpen     = "---"
	metadataClose    = "---"
	metadataCloseAlt = "..."
)

// Metadata holds the fields of a leading metadata block in document order.
type Metadata []yamlutil.Field

// SplitMetadata separates a leading metadata block from the Markdown body.
// Content must use \n line endings (see NormalizeLineEndings).
//
// Without an opening marker, with an opening marker that is never closed, or
// when the enclosed lines hold no key/value pairs (a heading between two
// thematic breaks reads as a YAML comment), there is no block: metadata is
// nil and body is the whole input. A blank block is consumed.
func SplitMetadata(content string) (Metadata, string, error) {
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, " \t") != metadataOpen {
		return nil, content, nil
	}

	var block strings.Builder
	for rest != "" {
		line, next, _ := strings.Cut(rest, "\n")
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == metadataClose || trimmed == metadataCloseAlt {
			meta, ok, err := parseMetadata(block.String())
			if err != nil {
				return nil, "", err
			}
			if !ok {
				return nil, content, nil
			}
			return meta, next, nil
		}
		block.WriteString(line)
		block.WriteByte('\n')
		rest = next
	}
	return nil, content, nil
}

// parseMetadata reports ok=false when block is not a metadata block at all.
func parseMetadata(block string) (Metadata, bool, error) {
	if strings.TrimSpace(block) == "" {
		return nil, true, nil
	}
	fields, err := yamlutil.DecodeMapping([]byte(block))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	}
	if len(fields) == 0 {
		return nil, false, nil
	}
	return Metadata(fields), true, nil
}

// metadataRow is the template view of one field. Nested mappings render as
// a nested table; every other value is flattened to Text.
type metadataRow struct {
	Key    string
	Text   string
	Nested []metadataRow
}

var metadataTemplate = template.Must(template.New("metadata").Parse(
	`{{define "table"}}<table class="front-matter">
{{range .}}<tr><th>{{.Key}}</th><td>{{if .Nested}}{{template "table" .Nested}}{{else}}{{.Text}}{{end}}</td></tr>
{{end}}</table>{{end}}{{template "table" .}}
`))

// WriteMetadata renders fields as an HTML table. Keys and values are escaped.
// Nothing is written for empty metadata.
func WriteMetadata(w io.Writer, meta Metadata) error {
	if len(meta) == 0 {
		return nil
	}
	if err := metadataTemplate.Execute(w, toRows(meta)); err != nil {
		return fmt.Errorf("rendering metadata: %w", err)
	}
	return nil
}

func toRows(fields []yamlutil.Field) []metadataRow {
	rows := make([]metadataRow, 0, len(fields))
	for _, f := range fields {
		row := metadataRow{Key: f.Key}
		if nested, ok := f.Value.([]yamlutil.Field); ok && len(nested) > 0 {
			row.Nested = toRows(nested)
		} else {
			row.Text = formatValue(f.Value)
		}
		rows = append(rows, row)
	}
	return rows
}

// formatValue flattens a scalar, sequence or mapping into display text.
// Sequences are comma-joined; mappings inside sequences become "k: v" pairs.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = formatValue(item)
		}
		return strings.Join(parts, ", ")
	case []yamlutil.Field:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = f.Key + ": " + formatValue(f.Value)
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(val)
	}
}
