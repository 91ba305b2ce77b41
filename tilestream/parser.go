package tilestream

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/krago/model"
)

// Header holds the five fields of a layer tile stream header, in the
// order they appear in the payload.
type Header struct {
	Version    int
	TileWidth  int
	TileHeight int
	PixelSize  int
	TileCount  int // the DATA field: number of tile records that follow
}

// Result is a fully parsed layer payload: the header, the non-empty
// tiles (still compressed), and the union of their grid rectangles.
// Bounds is empty when the layer has no tiles; such a layer carries no
// pixels and is dropped by the tree builder rather than producing a
// zero-area image.
type Result struct {
	Header Header
	Tiles  []model.Tile
	Bounds model.Bounds
}

// headerKeys is the exact order the five header lines must use.
var headerKeys = [5]string{"VERSION", "TILEWIDTH", "TILEHEIGHT", "PIXELSIZE", "DATA"}

// maxTileCoord bounds tile grid coordinates. Real documents stay far
// below this; anything beyond it would make the composed buffer for the
// layer absurdly large, so such records are a format error.
const maxTileCoord = 1 << 24

// Parse reads a complete layer payload. A missing or out-of-order header
// key, a malformed tile record, or a payload that ends early is a fatal
// format error for the layer.
func Parse(payload []byte) (*Result, error) {
	cur := &cursor{data: payload}

	var fields [5]int
	for i, key := range headerKeys {
		v, err := readHeaderLine(cur, key)
		if err != nil {
			return nil, err
		}
		fields[i] = v
	}

	res := &Result{
		Header: Header{
			Version:    fields[0],
			TileWidth:  fields[1],
			TileHeight: fields[2],
			PixelSize:  fields[3],
			TileCount:  fields[4],
		},
	}
	if res.Header.TileWidth <= 0 || res.Header.TileHeight <= 0 || res.Header.PixelSize <= 0 {
		return nil, fmt.Errorf("tilestream: non-positive tile geometry %dx%d pixelsize %d",
			res.Header.TileWidth, res.Header.TileHeight, res.Header.PixelSize)
	}

	for i := 0; i < res.Header.TileCount; i++ {
		left, top, length, err := readTileRecord(cur)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		if left%res.Header.TileWidth != 0 || top%res.Header.TileHeight != 0 {
			return nil, fmt.Errorf("tilestream: tile %d at (%d,%d) not aligned to the %dx%d grid",
				i, left, top, res.Header.TileWidth, res.Header.TileHeight)
		}
		if left < -maxTileCoord || left > maxTileCoord || top < -maxTileCoord || top > maxTileCoord {
			return nil, fmt.Errorf("tilestream: tile %d position (%d,%d) out of range", i, left, top)
		}

		data, err := cur.readBytes(length)
		if err != nil {
			return nil, fmt.Errorf("tile %d payload: %w", i, err)
		}

		// A zero-length tile is valid and simply skipped; the record
		// still advanced the cursor.
		if length == 0 {
			continue
		}

		compressed := make([]byte, length)
		copy(compressed, data)
		res.Tiles = append(res.Tiles, model.Tile{Left: left, Top: top, Compressed: compressed})

		tileRect := model.NewBounds(left, top, left+res.Header.TileWidth, top+res.Header.TileHeight)
		res.Bounds = res.Bounds.Union(tileRect)
	}

	return res, nil
}

// readHeaderLine reads one "KEY VALUE" line and checks the key matches.
func readHeaderLine(cur *cursor, key string) (int, error) {
	line, err := cur.readLine()
	if err != nil {
		return 0, fmt.Errorf("header %s: %w", key, err)
	}

	k, v, found := strings.Cut(string(line), " ")
	if !found || k != key {
		return 0, fmt.Errorf("tilestream: expected header %s, got %q", key, line)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("tilestream: header %s value %q: %w", key, v, err)
	}
	return n, nil
}

// readTileRecord reads one "left,top,flag,length" line. The compression
// flag field is parsed for shape but currently unused.
func readTileRecord(cur *cursor) (left, top, length int, err error) {
	line, err := cur.readLine()
	if err != nil {
		return 0, 0, 0, err
	}

	parts := strings.Split(string(line), ",")
	if len(parts) != 4 {
		return 0, 0, 0, fmt.Errorf("tilestream: malformed tile record %q", line)
	}

	nums := make([]int, 4)
	for i, p := range parts {
		nums[i], err = strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("tilestream: tile record field %q: %w", p, err)
		}
	}
	if nums[3] < 0 {
		return 0, 0, 0, fmt.Errorf("tilestream: negative tile payload length %d", nums[3])
	}
	return nums[0], nums[1], nums[3], nil
}
