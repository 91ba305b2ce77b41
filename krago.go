// Package krago provides a fluent API for decoding layers from Krita
// .kra and .krz files.
//
// Basic usage:
//
//	doc, warnings, err := krago.Open("painting.kra").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", krago.FormatWarnings(warnings))
//	}
//
// With options:
//
//	images, _, err := krago.Open("painting.kra").
//	    Cropped().
//	    Workers(4).
//	    Images()
//
// For advanced use cases, the lower-level reader package is also available.
package krago

import (
	"strings"

	"github.com/tsawler/krago/format"
	"github.com/tsawler/krago/kradoc"
	"github.com/tsawler/krago/reader"
)

// Warning describes a non-fatal condition encountered while parsing,
// such as a skipped layer or an unknown node type.
type Warning = kradoc.Warning

// FormatWarnings renders warnings one per line for display.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// Open opens a Krita file and returns an Extractor for fluent
// configuration. The returned Extractor is closed automatically by
// terminal operations like Document() or Images().
//
// Example:
//
//	doc, warnings, err := krago.Open("painting.kra").Document()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("painting.kra")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	doc, warnings, err := krago.FromReader(r).Document()
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
