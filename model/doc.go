// Package model provides the intermediate representation (IR) for decoded
// Krita documents.
//
// This package defines the user-facing data structures produced by parsing
// a .kra/.krz archive: the [Document], the layer forest with its fixed set
// of layer and mask variants, tile-space [Bounds], and the color mode and
// blend mode vocabularies.
//
// # Document Structure
//
// The [Document] type represents a complete document with its pixel
// dimensions, color mode, and top-level layers:
//
//	doc.FindLayer("some-uuid")
//	for _, layer := range doc.Layers { ... }
//
// # Layers
//
// All layer content implements the [Layer] interface. The concrete types
// are:
//
//   - [PaintLayer] - raster layers owning compressed tiles
//   - [GroupLayer] - groups of child layers
//   - [CloneLayer] - layers rendering another layer's content by reference
//   - [VectorLayer], [FillLayer], [FileLayer], [FilterLayer]
//   - mask variants: [TransformMask], [FilterMask], [TransparencyMask],
//     [ColorizeMask], [SelectionMask]
//
// Shared identity (name, UUID, visibility, position, bounds) lives in
// [BaseLayer], embedded in every variant.
//
// Layers are built once during parsing and are not mutated afterwards,
// with two exceptions: clone placeholders are replaced in place by
// resolved [CloneLayer] nodes during clone resolution, and bounds are
// populated as tile data is read. Consumers never observe a
// [ClonePlaceholder] in a parsed document.
package model
