package raster

import (
	"errors"
	"fmt"

	"github.com/tsawler/krago/internal/lzf"
	"github.com/tsawler/krago/model"
)

// ErrCorruptTile indicates a tile payload failed to decompress. The
// error is scoped to the single extraction call; the document and its
// other layers remain valid.
var ErrCorruptTile = errors.New("raster: corrupt tile")

// Compose decompresses every tile of the layer and assembles them into
// one interleaved, row-major pixel buffer covering the layer's bounds.
// The buffer is sized (tileWidth*columns) x (tileHeight*rows) x pixelSize
// where columns and rows are the tile-grid extent of the bounds.
func Compose(layer *model.PaintLayer) ([]byte, error) {
	tw, th, pixelSize := layer.TileWidth, layer.TileHeight, layer.PixelSize
	bounds := layer.Bounds

	cols := bounds.Width() / tw
	rows := bounds.Height() / th
	rowStride := pixelSize * tw * cols
	composed := make([]byte, rowStride*th*rows)

	tileLen := pixelSize * tw * th
	planar := make([]byte, tileLen)

	for _, tile := range layer.Tiles {
		n, err := lzf.Decompress(tile.Compressed, planar)
		if err != nil {
			return nil, fmt.Errorf("%w at (%d,%d): %s", ErrCorruptTile, tile.Left, tile.Top, err)
		}
		// Short tiles leave the remainder zeroed.
		for i := n; i < tileLen; i++ {
			planar[i] = 0
		}

		interleaved := interleave(planar, pixelSize, pixelSize/4, tw*th)

		// Blit row by row at the tile's position relative to the layer's
		// top-left bound.
		dstX := (tile.Left - bounds.Left) * pixelSize
		dstY := tile.Top - bounds.Top
		tileRow := pixelSize * tw
		if dstX < 0 || dstY < 0 || dstX+tileRow > rowStride || (dstY+th)*rowStride > len(composed) {
			return nil, fmt.Errorf("%w at (%d,%d): tile outside layer bounds", ErrCorruptTile, tile.Left, tile.Top)
		}
		for y := 0; y < th; y++ {
			dst := (dstY+y)*rowStride + dstX
			copy(composed[dst:dst+tileRow], interleaved[y*tileRow:(y+1)*tileRow])
		}
	}

	return composed, nil
}

// channelPermutation maps output channel byte slots to source plane
// indexes: identity except the first bytesPerChannel slots swap with the
// block at offset 2*bytesPerChannel, turning stored BGRA into RGBA.
func channelPermutation(pixelSize, bytesPerChannel int) []int {
	perm := make([]int, pixelSize)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < bytesPerChannel; i++ {
		perm[i], perm[2*bytesPerChannel+i] = perm[2*bytesPerChannel+i], perm[i]
	}
	return perm
}

// interleave transposes a planar tile payload into per-pixel channel
// order, applying the channel permutation.
func interleave(planar []byte, pixelSize, bytesPerChannel, tileArea int) []byte {
	perm := channelPermutation(pixelSize, bytesPerChannel)
	out := make([]byte, len(planar))
	for p := 0; p < tileArea; p++ {
		for k, pv := range perm {
			out[p*pixelSize+k] = planar[pv*tileArea+p]
		}
	}
	return out
}
