package lzf

import (
	"bytes"
	"errors"
	"testing"
)

// TestDecompressLiteralRun tests a single literal run: control byte 11
// means 12 verbatim bytes follow.
func TestDecompressLiteralRun(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	compressed := append([]byte{11}, payload...)

	dst := make([]byte, 64)
	n, err := Decompress(compressed, dst)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if n != len(payload) {
		t.Fatalf("wrote %d bytes, want %d", n, len(payload))
	}
	if !bytes.Equal(dst[:n], payload) {
		t.Errorf("decoded data doesn't match payload\ngot:  %v\nwant: %v", dst[:n], payload)
	}
}

// TestDecompressOverlap tests a self-referential back-reference: one
// literal byte followed by a reference that copies its own output.
func TestDecompressOverlap(t *testing.T) {
	// 0xC0 = length field 6-1=5, offset high bits 0; low offset byte 0.
	// Reference position is 0, copying 8 bytes while output grows.
	compressed := []byte{0x00, 0xAB, 0xC0, 0x00}

	dst := make([]byte, 16)
	n, err := Decompress(compressed, dst)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	want := bytes.Repeat([]byte{0xAB}, 9)
	if !bytes.Equal(dst[:n], want) {
		t.Errorf("overlapping copy not reproduced\ngot:  %v\nwant: %v", dst[:n], want)
	}
}

// TestDecompressInvalidReference tests that a back-reference pointing
// before the start of the output fails rather than reading wild memory.
func TestDecompressInvalidReference(t *testing.T) {
	// Back-reference as the very first instruction: position -1.
	compressed := []byte{0x20, 0x00}

	dst := make([]byte, 16)
	if _, err := Decompress(compressed, dst); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference, got %v", err)
	}
}

// TestDecompressOverflow tests that output is bounded by the destination
// length and never overruns it.
func TestDecompressOverflow(t *testing.T) {
	payload := bytes.Repeat([]byte{0xFF}, 12)
	compressed := append([]byte{11}, payload...)

	dst := make([]byte, 8)
	if _, err := Decompress(compressed, dst); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

// TestDecompressTruncated tests inputs that end mid-instruction.
func TestDecompressTruncated(t *testing.T) {
	cases := [][]byte{
		{0x20},          // back-reference missing its offset byte
		{0xE0},          // saturated length missing its extension byte
		{0x05, 1, 2, 3}, // literal run shorter than declared
	}
	for _, compressed := range cases {
		dst := make([]byte, 32)
		if _, err := Decompress(compressed, dst); !errors.Is(err, ErrTruncated) {
			t.Errorf("input %v: expected ErrTruncated, got %v", compressed, err)
		}
	}
}

// TestRoundTrip tests the round-trip law: Decompress(Compress(x)) == x
// for payloads that exercise literals, short and extended back-references.
func TestRoundTrip(t *testing.T) {
	cases := map[string][]byte{
		"empty":       {},
		"single byte": {0x42},
		"short text":  []byte("hello, tiles"),
		"repetitive":  bytes.Repeat([]byte("abcabcabc"), 100),
		"long run":    bytes.Repeat([]byte{0x7F}, 1000),
		"zero tile":   make([]byte, 64*64*4),
		"gradient": func() []byte {
			b := make([]byte, 4096)
			for i := range b {
				b[i] = byte(i * 7)
			}
			return b
		}(),
	}

	for name, original := range cases {
		compressed := Compress(original)

		dst := make([]byte, len(original))
		n, err := Decompress(compressed, dst)
		if err != nil {
			t.Fatalf("%s: Decompress failed: %v", name, err)
		}
		if n != len(original) {
			t.Fatalf("%s: wrote %d bytes, want %d", name, n, len(original))
		}
		if !bytes.Equal(dst[:n], original) {
			t.Errorf("%s: round trip mismatch", name)
		}
	}
}

// TestDecompressShortOutput tests that a tile shorter than the expected
// length reports the bytes actually written instead of failing.
func TestDecompressShortOutput(t *testing.T) {
	compressed := []byte{2, 0xAA, 0xBB, 0xCC}

	dst := make([]byte, 64)
	n, err := Decompress(compressed, dst)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if n != 3 {
		t.Errorf("wrote %d bytes, want 3", n)
	}
}
