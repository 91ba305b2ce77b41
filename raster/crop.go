package raster

import "github.com/tsawler/krago/model"

// Crop trims buf, a width x height buffer of pixelSize-byte pixels, to
// the smallest rectangle containing every pixel with alpha > 0. Alpha is
// the fourth channel: byte offset 3 for 4-byte pixels, the two bytes at
// offset 6 for 8-byte pixels (either being non-zero counts).
//
// The returned bounds are relative to the buffer origin, with the max
// edge made exclusive. A buffer with no non-transparent pixel yields a
// zero-size result and nil bytes; that is a valid outcome, not an error.
// Cropping is idempotent: cropping an already-cropped buffer again
// changes nothing.
func Crop(buf []byte, width, height, pixelSize int) ([]byte, model.Bounds) {
	bpc := pixelSize / 4
	alphaOff := 3 * bpc

	minX, minY := width, height
	maxX, maxY := -1, -1

	for y := 0; y < height; y++ {
		row := y * width * pixelSize
		for x := 0; x < width; x++ {
			a := row + x*pixelSize + alphaOff
			opaque := false
			for i := 0; i < bpc; i++ {
				if buf[a+i] > 0 {
					opaque = true
					break
				}
			}
			if !opaque {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < 0 {
		return nil, model.Bounds{}
	}

	// Make the max edges exclusive.
	bounds := model.NewBounds(minX, minY, maxX+1, maxY+1)
	cropW := bounds.Width()
	cropH := bounds.Height()

	out := make([]byte, cropW*cropH*pixelSize)
	srcStride := width * pixelSize
	dstStride := cropW * pixelSize
	for y := 0; y < cropH; y++ {
		src := (minY+y)*srcStride + minX*pixelSize
		copy(out[y*dstStride:(y+1)*dstStride], buf[src:src+dstStride])
	}

	return out, bounds
}
