package reader

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/tsawler/krago/container"
	"github.com/tsawler/krago/model"
)

// Image converts the raw buffer to a stdlib image. 8-bit pixels map
// directly onto NRGBA; 16-bit pixels are stored little endian in the
// document and are byte swapped into NRGBA64's big-endian layout.
func (img *RawImage) Image() image.Image {
	w, h := img.Bounds.Width(), img.Bounds.Height()
	rect := image.Rect(0, 0, w, h)

	if img.ColorMode == model.RGBA16 {
		out := image.NewNRGBA64(rect)
		for i := 0; i+1 < len(img.Pix); i += 2 {
			out.Pix[i] = img.Pix[i+1]
			out.Pix[i+1] = img.Pix[i]
		}
		return out
	}

	out := image.NewNRGBA(rect)
	copy(out.Pix, img.Pix)
	return out
}

// MergedImage decodes the pre-rendered flattened document Krita embeds
// in every archive.
func (r *Reader) MergedImage() (image.Image, error) {
	return r.decodePNGEntry(container.MergedImageEntry)
}

// Preview decodes the small preview rendering, when present.
func (r *Reader) Preview() (image.Image, error) {
	return r.decodePNGEntry(container.PreviewEntry)
}

// Thumbnail returns the merged image scaled to fit within maxW x maxH,
// preserving aspect ratio. It falls back to the preview entry when the
// merged image is absent.
func (r *Reader) Thumbnail(maxW, maxH int) (image.Image, error) {
	src, err := r.MergedImage()
	if err != nil {
		src, err = r.Preview()
		if err != nil {
			return nil, err
		}
	}

	sb := src.Bounds()
	w, h := fitWithin(sb.Dx(), sb.Dy(), maxW, maxH)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst, nil
}

func (r *Reader) decodePNGEntry(name string) (image.Image, error) {
	data, err := r.archive.ReadEntry(name)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// fitWithin scales (w, h) down to fit in (maxW, maxH) keeping aspect
// ratio, never below 1x1 and never scaling up.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	if w <= maxW && h <= maxH {
		return w, h
	}

	scaledW := w * maxH / h
	if scaledW <= maxW {
		if scaledW < 1 {
			scaledW = 1
		}
		return scaledW, maxH
	}
	scaledH := h * maxW / w
	if scaledH < 1 {
		scaledH = 1
	}
	return maxW, scaledH
}
