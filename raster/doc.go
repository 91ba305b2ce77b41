// Package raster turns a paint layer's compressed tiles into a single
// contiguous interleaved pixel buffer, and trims composed buffers to
// their painted bounding box.
//
// Tile payloads decompress to a planar layout: every byte of channel 0
// for the whole tile, then every byte of channel 1, and so on. Krita
// stores channels in BGRA order, so reassembly both interleaves the
// planes per pixel and swaps the blue and red channel blocks, producing
// standard RGBA (or RGBA16) byte order.
package raster
