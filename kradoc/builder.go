package kradoc

import (
	"errors"
	"fmt"

	"github.com/tsawler/krago/model"
	"github.com/tsawler/krago/tilestream"
)

// Document-level errors.
var (
	ErrNoImage = errors.New("kradoc: maindoc.xml has no IMAGE element")
)

// LayerStore provides access to per-layer binary payloads inside the
// archive. container.Reader satisfies it; the builder needs nothing
// wider than entry lookup.
type LayerStore interface {
	HasEntry(name string) bool
	ReadEntry(name string) ([]byte, error)
}

// Warning describes a non-fatal condition encountered while building the
// layer tree, such as a skipped layer or an unknown node type.
type Warning struct {
	Layer   string // layer name, when one was available
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Layer == "" {
		return w.Message
	}
	return fmt.Sprintf("layer %q: %s", w.Layer, w.Message)
}

// builder carries the state of one tree construction.
type builder struct {
	store        LayerStore
	layersPrefix string
	warnings     []Warning
}

func (b *builder) warnf(layer, format string, args ...interface{}) {
	b.warnings = append(b.warnings, Warning{Layer: layer, Message: fmt.Sprintf(format, args...)})
}

// Build parses maindoc.xml and constructs the document with its layer
// forest. Clone layers are returned as placeholders; callers must run
// clone resolution before handing the document to consumers.
func Build(mainDoc []byte, store LayerStore) (*model.Document, []Warning, error) {
	root, err := parseXML(mainDoc)
	if err != nil {
		return nil, nil, err
	}

	image := root.child("IMAGE")
	if image == nil {
		return nil, nil, ErrNoImage
	}

	doc := model.NewDocument()
	doc.Name = image.attr("name", "")
	doc.Width = image.attrInt("width", 0)
	doc.Height = image.attrInt("height", 0)

	mode, err := model.ParseColorMode(image.attr("colorspacename", ""))
	if err != nil {
		return nil, nil, fmt.Errorf("kradoc: document: %w", err)
	}
	doc.ColorMode = mode

	b := &builder{
		store:        store,
		layersPrefix: doc.Name + "/layers/",
	}

	if layers := image.child("layers"); layers != nil {
		doc.Layers = b.buildLayers(layers.Children)
	}

	return doc, b.warnings, nil
}

// buildLayers constructs the variants for a list of layer or mask
// elements, omitting any that fail to build.
func (b *builder) buildLayers(children []element) []model.Layer {
	var out []model.Layer
	for i := range children {
		el := &children[i]
		if el.XMLName.Local != "layer" && el.XMLName.Local != "mask" {
			continue
		}
		if l := b.buildLayer(el); l != nil {
			out = append(out, l)
		}
	}
	return out
}

// buildLayer dispatches on the nodetype attribute. It returns nil when
// the layer is rejected or its node type is unknown; both are non-fatal.
func (b *builder) buildLayer(el *element) model.Layer {
	base := b.baseFrom(el)
	nodeType := el.attr("nodetype", "")

	var layer model.Layer
	switch nodeType {
	case "paintlayer":
		layer = b.buildPaintLayer(el, base)
	case "grouplayer":
		g := &model.GroupLayer{
			BaseLayer:   base,
			PassThrough: el.attrBool("passthrough", false),
		}
		// Children are built before the group is appended, so nested
		// failures only affect the nested layer.
		if nested := el.child("layers"); nested != nil {
			g.Children = b.buildLayers(nested.Children)
		}
		layer = g
	case "clonelayer":
		layer = &model.ClonePlaceholder{
			BaseLayer:  base,
			TargetUUID: el.attr("clonefromuuid", ""),
		}
	case "vectorlayer", "shapelayer":
		layer = &model.VectorLayer{BaseLayer: base}
	case "filllayer", "generatorlayer":
		layer = &model.FillLayer{BaseLayer: base}
	case "filelayer":
		mode, err := model.ParseColorMode(el.attr("colorspacename", ""))
		if err != nil {
			b.warnf(base.Name, "%s; layer skipped", err)
			return nil
		}
		layer = &model.FileLayer{
			BaseLayer: base,
			ColorMode: mode,
			Source:    el.attr("source", ""),
		}
	case "filterlayer", "adjustmentlayer":
		layer = &model.FilterLayer{BaseLayer: base}
	case "transformmask":
		layer = &model.TransformMask{BaseLayer: base}
	case "filtermask":
		layer = &model.FilterMask{BaseLayer: base}
	case "transparencymask":
		layer = &model.TransparencyMask{BaseLayer: base}
	case "colorizemask":
		layer = &model.ColorizeMask{BaseLayer: base}
	case "selectionmask":
		layer = &model.SelectionMask{BaseLayer: base}
	default:
		// Unknown node types are skipped by policy so newer documents
		// still open.
		b.warnf(base.Name, "unknown node type %q; skipped", nodeType)
		return nil
	}
	if layer == nil {
		return nil
	}

	if masks := el.child("masks"); masks != nil {
		layer.Base().Masks = b.buildLayers(masks.Children)
	}
	return layer
}

// buildPaintLayer reads the layer's tile stream and fills in its raster
// data. Any per-layer failure rejects just this layer.
func (b *builder) buildPaintLayer(el *element, base model.BaseLayer) model.Layer {
	filename := el.attr("filename", "")
	if filename == "" {
		b.warnf(base.Name, "missing filename attribute; layer skipped")
		return nil
	}

	mode, err := model.ParseColorMode(el.attr("colorspacename", ""))
	if err != nil {
		b.warnf(base.Name, "%s; layer skipped", err)
		return nil
	}

	entry := b.layersPrefix + filename
	if !b.store.HasEntry(entry) {
		b.warnf(base.Name, "missing layer data entry %s; layer skipped", entry)
		return nil
	}
	payload, err := b.store.ReadEntry(entry)
	if err != nil {
		b.warnf(base.Name, "reading layer data: %s; layer skipped", err)
		return nil
	}

	res, err := tilestream.Parse(payload)
	if err != nil {
		b.warnf(base.Name, "parsing layer data: %s; layer skipped", err)
		return nil
	}

	// A paint layer with no tiles has no pixels anywhere; it is dropped
	// rather than kept as a zero-area image.
	if len(res.Tiles) == 0 {
		return nil
	}

	base.Bounds = res.Bounds
	return &model.PaintLayer{
		BaseLayer:  base,
		ColorMode:  mode,
		Filename:   filename,
		Version:    res.Header.Version,
		TileWidth:  res.Header.TileWidth,
		TileHeight: res.Header.TileHeight,
		PixelSize:  res.Header.PixelSize,
		Tiles:      res.Tiles,
	}
}

// baseFrom reads the identity and composite attributes shared by every
// variant.
func (b *builder) baseFrom(el *element) model.BaseLayer {
	return model.BaseLayer{
		Name:       el.attr("name", ""),
		UUID:       el.attr("uuid", ""),
		Visible:    el.attrBool("visible", true),
		X:          el.attrInt("x", 0),
		Y:          el.attrInt("y", 0),
		Opacity:    uint8(el.attrInt("opacity", 255)),
		Collapsed:  el.attrBool("collapsed", false),
		ColorLabel: el.attrInt("colorlabel", 0),
		BlendMode:  model.ParseBlendMode(el.attr("compositeop", "")),
	}
}
