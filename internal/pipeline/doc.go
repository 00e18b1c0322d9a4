// Package pipeline turns Markdown notes into HTML.
//
// The stages are:
//   - line-ending normalization
//   - metadata block split (leading "---" YAML block) and table rendering
//   - Markdown to HTML conversion via goldmark
//   - document assembly with an optional inlined stylesheet
//   - relative link rewriting for documents loaded from a temp directory
//
// PDF generation is handled by the root jot package, which drives a headless
// browser over the assembled document.
package pipeline
