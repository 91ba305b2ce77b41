// Package lzf implements the LZF-style codec Krita uses for layer tile
// payloads.
//
// The format is byte oriented. A control byte c introduces either a
// literal run (c+1 < 33: copy c+1 input bytes verbatim) or a
// back-reference into already-produced output (offset from the high five
// bits of c plus a trailing byte, length from the top three bits with an
// optional extension byte). Back-references may overlap their own output,
// which the decoder reproduces byte for byte.
package lzf
