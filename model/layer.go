package model

// Layer is implemented by every layer and mask variant. The set of
// implementations is fixed; dispatch on the document's nodetype attribute
// maps 1:1 to variant construction.
type Layer interface {
	// Base returns the shared identity fields embedded in the variant.
	Base() *BaseLayer
	// IsUseful reports whether the layer contributes renderable content.
	IsUseful() bool
}

// BaseLayer holds the fields shared by every layer variant: identity,
// placement, tile-space bounds, and the composite attributes.
type BaseLayer struct {
	Name    string
	UUID    string
	Visible bool

	// X/Y is the placement offset applied on extraction. It is not the
	// same thing as Bounds, which is the tile-space extent.
	X int
	Y int

	Bounds Bounds

	Opacity    uint8
	Collapsed  bool
	ColorLabel int
	BlendMode  BlendMode

	// Masks attached to this layer, in document order.
	Masks []Layer
}

// Base returns the layer itself, satisfying the Layer interface for
// embedding variants.
func (b *BaseLayer) Base() *BaseLayer {
	return b
}

// IsUseful for most variants: the derived width and height must both be
// non-zero. Variants with different semantics override this.
func (b *BaseLayer) IsUseful() bool {
	return b.Bounds.Width() != 0 && b.Bounds.Height() != 0
}

// Tile is one fixed-size rectangle of a paint layer's raster data,
// positioned on the tile grid and stored compressed. Decompression is
// on-demand and never mutates the stored bytes.
type Tile struct {
	Left       int
	Top        int
	Compressed []byte
}

// PaintLayer is a raster layer owning compressed tiles.
type PaintLayer struct {
	BaseLayer

	ColorMode ColorMode
	Filename  string

	// Tile geometry from the layer's binary stream header.
	Version    int
	TileWidth  int
	TileHeight int
	PixelSize  int

	Tiles []Tile
}

// GroupLayer holds child layers. A group is always useful regardless of
// its children.
type GroupLayer struct {
	BaseLayer

	PassThrough bool
	Children    []Layer
}

// IsUseful for a group is unconditionally true.
func (g *GroupLayer) IsUseful() bool {
	return true
}

// CloneLayer renders another layer's content by reference. Target is
// always non-nil in a parsed document; resolution runs as part of opening.
type CloneLayer struct {
	BaseLayer

	Target Layer
}

// IsUseful delegates to the resolved target. Resolution guarantees the
// target chain is acyclic, so the recursion terminates.
func (c *CloneLayer) IsUseful() bool {
	return c.Target.IsUseful()
}

// ClonePlaceholder is the transient form of a clone layer during tree
// construction, holding only the target UUID. Clone resolution replaces
// every placeholder with a CloneLayer; consumers never observe one.
type ClonePlaceholder struct {
	BaseLayer

	TargetUUID string
}

// IsUseful is false; a placeholder has no resolved content. This is never
// observed through the public API.
func (p *ClonePlaceholder) IsUseful() bool {
	return false
}

// VectorLayer holds vector shape content. Shape rendering is out of
// scope; the layer is kept so the tree is complete.
type VectorLayer struct {
	BaseLayer
}

// FillLayer is a generated fill.
type FillLayer struct {
	BaseLayer
}

// FileLayer references an external file and carries its own color mode.
type FileLayer struct {
	BaseLayer

	ColorMode ColorMode
	Source    string
}

// FilterLayer applies a filter to the composition below it.
type FilterLayer struct {
	BaseLayer
}

// TransformMask is a transform applied to its parent layer.
type TransformMask struct {
	BaseLayer
}

// FilterMask applies a filter through a mask.
type FilterMask struct {
	BaseLayer
}

// TransparencyMask masks its parent's alpha.
type TransparencyMask struct {
	BaseLayer
}

// ColorizeMask holds colorize-tool scribbles.
type ColorizeMask struct {
	BaseLayer
}

// SelectionMask stores a saved selection. Selections never contribute
// renderable content.
type SelectionMask struct {
	BaseLayer
}

// IsUseful for a selection mask is unconditionally false.
func (s *SelectionMask) IsUseful() bool {
	return false
}
