package lzf

import "errors"

// Codec errors.
var (
	// ErrOverflow indicates a write would exceed the expected output length.
	ErrOverflow = errors.New("lzf: output overflow")
	// ErrInvalidReference indicates a back-reference before the start of output.
	ErrInvalidReference = errors.New("lzf: back-reference before start of output")
	// ErrTruncated indicates the compressed input ended mid-instruction.
	ErrTruncated = errors.New("lzf: truncated input")
)

// Decompress decodes compressed into dst and returns the number of bytes
// written, which may be less than len(dst) for a short or empty tile.
// dst bounds the output: a write past it fails with ErrOverflow rather
// than growing the buffer.
func Decompress(compressed, dst []byte) (int, error) {
	in := 0
	out := 0

	for in < len(compressed) {
		c := int(compressed[in])
		in++

		ctrl := c + 1
		if ctrl < 33 {
			// Literal run of ctrl bytes.
			if in+ctrl > len(compressed) {
				return out, ErrTruncated
			}
			if out+ctrl > len(dst) {
				return out, ErrOverflow
			}
			copy(dst[out:out+ctrl], compressed[in:in+ctrl])
			in += ctrl
			out += ctrl
			continue
		}

		// Back-reference. The 3-bit length field saturates at 6, in which
		// case an extension byte follows; the low offset byte comes after.
		length := (c >> 5) - 1
		ref := out - ((c&31)<<8 + 1)

		if length == 6 {
			if in >= len(compressed) {
				return out, ErrTruncated
			}
			length += int(compressed[in])
			in++
		}

		if in >= len(compressed) {
			return out, ErrTruncated
		}
		ref -= int(compressed[in])
		in++

		if ref < 0 {
			return out, ErrInvalidReference
		}
		if out+length+3 > len(dst) {
			return out, ErrOverflow
		}

		// Copy byte by byte: the reference range may overlap the bytes
		// being written, and that self-extension is part of the format.
		for i := 0; i < length+3; i++ {
			dst[out] = dst[ref]
			out++
			ref++
		}
	}

	return out, nil
}

// DecompressAlloc decodes compressed into a newly allocated buffer of
// expectedLength bytes, returning the prefix actually written.
func DecompressAlloc(compressed []byte, expectedLength int) ([]byte, error) {
	dst := make([]byte, expectedLength)
	n, err := Decompress(compressed, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
