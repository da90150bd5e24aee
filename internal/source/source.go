// Package source handles loading source text and splitting it into
// logical lines for the classifier.
package source

import (
	"fmt"
	"os"
	"strings"
)

// File is a loaded source file.
type File struct {
	// Name is the display name, e.g. the path or "<repl>".
	Name string

	// Lines is the source split into logical lines.
	Lines []string
}

// Load reads a source file from disk and splits it into lines.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", path, err)
	}
	return &File{Name: path, Lines: Split(string(data))}, nil
}

// Split breaks source text into logical lines using the universal
// newline convention: "\r\n", "\n" and a bare "\r" all terminate a
// line. A single trailing terminator does not produce a final empty
// line. The empty string splits into no lines at all.
//
// This is deliberately more forgiving than splitting on one fixed
// terminator: a CRLF-only splitter fed an LF file sees one giant line
// and silently misclassifies the whole program.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
