package model

import "fmt"

// ColorMode identifies a supported per-channel depth for RGBA pixel data.
type ColorMode int

const (
	// RGBA8 is 8 bits per channel, 4 bytes per pixel.
	RGBA8 ColorMode = iota
	// RGBA16 is 16 bits per channel, 8 bytes per pixel.
	RGBA16
)

// String returns the Krita colorspace name for the mode.
func (m ColorMode) String() string {
	switch m {
	case RGBA16:
		return "RGBA16"
	default:
		return "RGBA"
	}
}

// PixelSize returns the number of bytes per pixel.
func (m ColorMode) PixelSize() int {
	if m == RGBA16 {
		return 8
	}
	return 4
}

// BytesPerChannel returns the number of bytes per color channel.
func (m ColorMode) BytesPerChannel() int {
	if m == RGBA16 {
		return 2
	}
	return 1
}

// ParseColorMode maps a Krita colorspacename attribute to a ColorMode.
// Anything other than the supported RGBA variants is rejected explicitly
// rather than silently misinterpreted.
func ParseColorMode(name string) (ColorMode, error) {
	switch name {
	case "", "RGBA", "rgba8":
		return RGBA8, nil
	case "RGBA16", "rgba16":
		return RGBA16, nil
	default:
		return RGBA8, fmt.Errorf("unsupported color mode %q", name)
	}
}
