// Package report renders almanacs for output.
//
// This package contains writers for different output formats:
//   - SimpleWriter: one line per day, easy to read and to parse
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: GitHub flavored Markdown tables
//
// Writers implement the Writer interface and can be composed with
// MultiWriter.
package report
