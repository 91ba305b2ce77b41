// Package tilestream parses the binary payload a Krita archive stores per
// paint layer: a five-line text header (VERSION, TILEWIDTH, TILEHEIGHT,
// PIXELSIZE, DATA) followed by one record per tile, each a text line
// "left,top,flag,length" and then exactly length bytes of compressed tile
// payload.
//
// Parsing is cursor based over the owned byte slice; every advance is
// bounds checked and running off the end is an explicit error, never a
// panic. Tiles are described, not decompressed: decoding happens later,
// on demand, in the raster package.
package tilestream
