// Package parsers provides parsers for importing topic seeds from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawTopic represents a topic row parsed from an external source before validation.
// Parent names the key of an earlier row, or the id of a topic already in the store.
type RawTopic struct {
	Key     string `json:"key" yaml:"key"`
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
	Parent  string `json:"parent,omitempty" yaml:"parent,omitempty"`
	LineNum int    `json:"-" yaml:"-"` // Line number in source file (set by parser)
}

// Parser defines the interface for parsing topic seeds from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawTopic, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv", "yaml".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return ForFormat(ext)
}
