// Package reader decodes Krita .kra/.krz documents.
//
// Opening a document validates the archive, parses maindoc.xml, builds
// the layer forest, and resolves clone layers, so a successfully opened
// Reader always holds a fully typed tree. Pixel data stays compressed
// until a layer is extracted.
//
//	r, err := reader.Open("painting.kra")
//	if err != nil { ... }
//	defer r.Close()
//
//	doc := r.Document()
//	img, err := r.ExtractImage(doc.Layers[0], true)
//
// Extraction failures (a corrupt tile, a non-raster layer) are scoped to
// the single call; the document and its other layers stay usable.
package reader
