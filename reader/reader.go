package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/tsawler/krago/container"
	"github.com/tsawler/krago/kradoc"
	"github.com/tsawler/krago/model"
	"github.com/tsawler/krago/raster"
	"github.com/tsawler/krago/resolver"

	"github.com/remeh/sizedwaitgroup"
)

// ErrNotRaster indicates an extraction attempt on a layer variant that
// owns no tiles.
var ErrNotRaster = errors.New("reader: layer owns no raster tiles")

// Reader provides access to a parsed Krita document.
type Reader struct {
	archive  *container.Reader
	doc      *model.Document
	warnings []kradoc.Warning
}

// Open opens and fully parses a document from a path. Clone resolution
// runs as part of opening; a missing clone target or a clone cycle fails
// here, never later.
func Open(path string) (*Reader, error) {
	archive, err := container.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := newReader(archive)
	if err != nil {
		archive.Close()
		return nil, err
	}
	return r, nil
}

// OpenReader opens a document from an io.ReaderAt.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	archive, err := container.OpenReader(ra, size)
	if err != nil {
		return nil, err
	}
	return newReader(archive)
}

func newReader(archive *container.Reader) (*Reader, error) {
	mainDoc, err := archive.ReadEntry(container.MainDocEntry)
	if err != nil {
		return nil, err
	}

	doc, warnings, err := kradoc.Build(mainDoc, archive)
	if err != nil {
		return nil, err
	}
	if err := resolver.Resolve(doc); err != nil {
		return nil, err
	}

	return &Reader{archive: archive, doc: doc, warnings: warnings}, nil
}

// Close releases the underlying archive.
func (r *Reader) Close() error {
	return r.archive.Close()
}

// Document returns the parsed document. The tree is fully typed: no
// clone placeholder survives a successful Open.
func (r *Reader) Document() *model.Document {
	return r.doc
}

// Warnings returns the non-fatal conditions collected while parsing,
// such as skipped layers.
func (r *Reader) Warnings() []kradoc.Warning {
	return r.warnings
}

// RawImage is one extracted layer: tightly packed, row-major,
// interleaved RGBA (or RGBA16) bytes plus the final bounds with the
// layer's x/y placement applied.
type RawImage struct {
	Bounds    model.Bounds
	ColorMode model.ColorMode
	Pix       []byte
}

// ExtractImage reassembles a layer's pixel data, optionally cropped to
// its painted bounding box. Only tile-owning variants can be extracted.
// Repeated extraction recomputes from the stored compressed tiles.
func (r *Reader) ExtractImage(layer model.Layer, crop bool) (*RawImage, error) {
	paint, ok := layer.(*model.PaintLayer)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotRaster, layer)
	}

	buf, err := raster.Compose(paint)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", paint.Name, err)
	}

	bounds := paint.Bounds
	if crop {
		cropped, cropBounds := raster.Crop(buf, bounds.Width(), bounds.Height(), paint.PixelSize)
		buf = cropped
		bounds = cropBounds.Translate(bounds.Left, bounds.Top)
	}

	return &RawImage{
		Bounds:    bounds.Translate(paint.X, paint.Y),
		ColorMode: paint.ColorMode,
		Pix:       buf,
	}, nil
}

// LayerImage pairs a layer with its extracted pixels.
type LayerImage struct {
	Layer model.Layer
	Image *RawImage
}

// ExtractAll extracts every useful paint layer in the document,
// fanning out across at most workers goroutines. Each layer's composed
// buffer is independently owned, so cross-layer extraction is safe to
// parallelize. The first error aborts the result.
func (r *Reader) ExtractAll(crop bool, workers int) ([]LayerImage, error) {
	if workers < 1 {
		workers = 1
	}

	var targets []*model.PaintLayer
	r.doc.Walk(func(l model.Layer) bool {
		if p, ok := l.(*model.PaintLayer); ok && p.IsUseful() {
			targets = append(targets, p)
		}
		return true
	})

	results := make([]LayerImage, len(targets))
	errs := make([]error, len(targets))

	swg := sizedwaitgroup.New(workers)
	for i, p := range targets {
		swg.Add()
		go func(i int, p *model.PaintLayer) {
			defer swg.Done()
			img, err := r.ExtractImage(p, crop)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = LayerImage{Layer: p, Image: img}
		}(i, p)
	}
	swg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
