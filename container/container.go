// Package container provides access to the ZIP archive underlying a
// Krita .kra/.krz file: mimetype validation, entry lookup, and entry
// reading. It knows nothing about layers or pixels; the reader package
// interprets the entries.
package container

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
)

// Well-known archive entries.
const (
	mimetypeEntry = "mimetype"
	kritaMimetype = "application/x-krita"

	// MainDocEntry is the XML document tree at the archive root.
	MainDocEntry = "maindoc.xml"
	// MergedImageEntry is the pre-rendered flattened document.
	MergedImageEntry = "mergedimage.png"
	// PreviewEntry is the small preview rendering.
	PreviewEntry = "preview.png"
)

// Container-related errors.
var (
	ErrInvalidArchive  = errors.New("container: invalid or corrupted archive")
	ErrMissingMimetype = errors.New("container: missing mimetype entry")
	ErrWrongMimetype   = errors.New("container: mimetype is not application/x-krita")
	ErrMissingMainDoc  = errors.New("container: missing maindoc.xml")
	ErrEntryNotFound   = errors.New("container: entry not found")
)

// Reader provides validated access to a Krita archive's entries.
type Reader struct {
	zrc *zip.ReadCloser // non-nil when opened from a path
	zr  *zip.Reader
}

// Open opens an archive from a path and validates it is a Krita document.
func Open(path string) (*Reader, error) {
	zrc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArchive, err)
	}

	r := &Reader{zrc: zrc, zr: &zrc.Reader}
	if err := r.init(); err != nil {
		zrc.Close()
		return nil, err
	}
	return r, nil
}

// OpenReader opens an archive from an io.ReaderAt.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArchive, err)
	}

	r := &Reader{zr: zr}
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

// init registers the deflate decompressor and validates the archive.
func (r *Reader) init() error {
	r.zr.RegisterDecompressor(zip.Deflate, func(in io.Reader) io.ReadCloser {
		return flate.NewReader(in)
	})
	return r.validate()
}

// validate checks the mimetype entry and the presence of maindoc.xml.
func (r *Reader) validate() error {
	if !r.HasEntry(mimetypeEntry) {
		return ErrMissingMimetype
	}
	mt, err := r.ReadEntry(mimetypeEntry)
	if err != nil {
		return fmt.Errorf("reading mimetype: %w", err)
	}
	if strings.TrimSpace(string(mt)) != kritaMimetype {
		return fmt.Errorf("%w: got %q", ErrWrongMimetype, strings.TrimSpace(string(mt)))
	}
	if !r.HasEntry(MainDocEntry) {
		return ErrMissingMainDoc
	}
	return nil
}

// Close releases the underlying archive when opened from a path.
func (r *Reader) Close() error {
	if r.zrc != nil {
		err := r.zrc.Close()
		r.zrc = nil
		return err
	}
	return nil
}

// HasEntry reports whether the archive contains the named entry.
func (r *Reader) HasEntry(name string) bool {
	return r.find(name) != nil
}

// ReadEntry returns the full contents of the named entry.
func (r *Reader) ReadEntry(name string) ([]byte, error) {
	f := r.find(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading entry %s: %w", name, err)
	}
	return data, nil
}

func (r *Reader) find(name string) *zip.File {
	for _, f := range r.zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}
