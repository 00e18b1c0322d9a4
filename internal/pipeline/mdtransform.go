package pipeline

import "strings"

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeLineEndings converts \r\n and lone \r to \n so the metadata
// markers and the Markdown body are split on a single convention.
func NormalizeLineEndings(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	return lineEndings.Replace(content)
}
