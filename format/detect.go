// Package format provides file format detection for the krago library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// KRA indicates a Krita document archive.
	KRA
	// KRZ indicates a Krita archival document; same layout as KRA.
	KRZ
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case KRA:
		return "KRA"
	case KRZ:
		return "KRZ"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case KRA:
		return ".kra"
	case KRZ:
		return ".krz"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".kra":
		return KRA
	case ".krz":
		return KRZ
	default:
		return Unknown
	}
}

// zipMagic is the local-file-header signature every ZIP archive starts with.
var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// IsArchive reports whether the leading bytes look like a ZIP archive.
// Both KRA and KRZ are ZIP containers, so this is a cheap pre-check
// before full validation against the mimetype entry.
func IsArchive(head []byte) bool {
	return bytes.HasPrefix(head, zipMagic)
}
