package tilestream

import (
	"bytes"
	"errors"
)

// ErrTruncated indicates the payload ended before a complete header line,
// tile record, or tile payload could be read.
var ErrTruncated = errors.New("tilestream: unexpected end of payload")

// cursor is a bounds-checked reader over a layer payload. Lines are
// terminated by a single newline (0x0A); raw reads consume exact byte
// counts.
type cursor struct {
	data []byte
	pos  int
}

// readLine returns the bytes up to the next newline and advances past it.
// A payload ending without a final newline is truncated.
func (c *cursor) readLine() ([]byte, error) {
	if c.pos >= len(c.data) {
		return nil, ErrTruncated
	}
	i := bytes.IndexByte(c.data[c.pos:], '\n')
	if i < 0 {
		return nil, ErrTruncated
	}
	line := c.data[c.pos : c.pos+i]
	c.pos += i + 1
	return line, nil
}

// readBytes returns the next n raw bytes and advances past them.
func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, ErrTruncated
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
