// Package preview produces display-sized copies of source images.
package preview

import (
	"context"
	"image"

	"image-converter/internal/codec"

	"golang.org/x/image/draw"
)

// Preview region of the main window.
const (
	Width  = 631
	Height = 390
)

// Fit returns the largest size within maxW x maxH that keeps w:h. Sizes that
// already fit are returned unchanged.
func Fit(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}

	// Compare w/maxW against h/maxH without floating point.
	if w*maxH >= h*maxW {
		nh := h * maxW / w
		return maxW, max(nh, 1)
	}
	nw := w * maxH / h
	return max(nw, 1), maxH
}

// Scale returns img resized to fit maxW x maxH.
func Scale(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), maxW, maxH)
	if w == b.Dx() && h == b.Dy() {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// Load decodes path with d and scales it for display. The source file is only
// read.
func Load(ctx context.Context, d codec.Decoder, path string, maxW, maxH int) (image.Image, error) {
	img, err := d.Decode(ctx, path)
	if err != nil {
		return nil, err
	}
	return Scale(img, maxW, maxH), nil
}
