package lzf

const (
	hashBits = 13
	hashSize = 1 << hashBits

	maxLiteral  = 32   // longest literal run one control byte can describe
	maxDistance = 8192 // furthest back a reference can reach
	maxMatch    = 264  // 3 base bytes + 6 in the length field + 255 extension
)

func hash3(a, b, c byte) uint32 {
	h := uint32(a)<<16 | uint32(b)<<8 | uint32(c)
	return (h * 2654435761 >> (32 - hashBits)) & (hashSize - 1)
}

// Compress encodes src with the tile codec. The output always decodes
// back to src via Decompress; it is used for writing fixtures and for
// stating the round-trip law in tests, not for producing files Krita
// itself would emit (any valid encoding decodes identically).
func Compress(src []byte) []byte {
	var htab [hashSize]int
	for i := range htab {
		htab[i] = -1
	}

	out := make([]byte, 0, len(src)/2+16)
	litStart := 0
	i := 0

	flushLiterals := func(end int) {
		for litStart < end {
			n := end - litStart
			if n > maxLiteral {
				n = maxLiteral
			}
			out = append(out, byte(n-1))
			out = append(out, src[litStart:litStart+n]...)
			litStart += n
		}
	}

	for i+2 < len(src) {
		h := hash3(src[i], src[i+1], src[i+2])
		cand := htab[h]
		htab[h] = i

		if cand < 0 || i-cand > maxDistance ||
			src[cand] != src[i] || src[cand+1] != src[i+1] || src[cand+2] != src[i+2] {
			i++
			continue
		}

		matchLen := 3
		for i+matchLen < len(src) && matchLen < maxMatch &&
			src[cand+matchLen] == src[i+matchLen] {
			matchLen++
		}

		flushLiterals(i)

		dist := i - cand - 1 // encoded distance, 0-based
		high := byte(dist >> 8)
		low := byte(dist)
		l := matchLen - 3
		if l < 6 {
			out = append(out, byte(l+1)<<5|high, low)
		} else {
			out = append(out, 7<<5|high, byte(l-6), low)
		}

		i += matchLen
		litStart = i
	}

	flushLiterals(len(src))
	return out
}
