package krago

import (
	"fmt"
	"image"

	"github.com/tsawler/krago/format"
	"github.com/tsawler/krago/model"
	"github.com/tsawler/krago/reader"
)

// Extractor provides a fluent interface for decoding Krita files.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	format   format.Format

	// Reader
	reader *reader.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		format:       e.format,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// Cropped trims every extracted layer to its painted bounding box.
func (e *Extractor) Cropped() *Extractor {
	newExt := e.clone()
	newExt.options.crop = true
	return newExt
}

// Format returns the container format detected from the filename.
// Detection is advisory: opening validates the archive's mimetype entry
// regardless of extension.
func (e *Extractor) Format() format.Format {
	return e.format
}

// Workers sets the number of goroutines bulk extraction may use.
// Values below 1 fall back to a single worker.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.workers = n
	return newExt
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases the underlying reader if this Extractor owns it.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.readerOpened = false
		e.ownsReader = false
		return err
	}
	return nil
}

// Document parses the file and returns the layer tree with any
// non-fatal warnings. The tree is fully resolved: clone layers
// reference their targets directly.
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	return e.reader.Document(), e.reader.Warnings(), nil
}

// Images extracts every useful paint layer, honoring the Cropped and
// Workers options.
func (e *Extractor) Images() ([]reader.LayerImage, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	images, err := e.reader.ExtractAll(e.options.crop, e.options.workers)
	if err != nil {
		return nil, e.reader.Warnings(), err
	}
	return images, e.reader.Warnings(), nil
}

// LayerImage extracts the single layer with the given UUID.
func (e *Extractor) LayerImage(uuid string) (*reader.RawImage, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	layer := e.reader.Document().FindLayer(uuid)
	if layer == nil {
		return nil, e.reader.Warnings(), fmt.Errorf("no layer with uuid %q", uuid)
	}
	img, err := e.reader.ExtractImage(layer, e.options.crop)
	if err != nil {
		return nil, e.reader.Warnings(), err
	}
	return img, e.reader.Warnings(), nil
}

// Thumbnail returns the document's merged image scaled to fit within
// maxW x maxH.
func (e *Extractor) Thumbnail(maxW, maxH int) (image.Image, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()

	return e.reader.Thumbnail(maxW, maxH)
}
