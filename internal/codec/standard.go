package codec

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const JPEGQuality = 95

// StandardExtensions are the source extensions Standard decodes.
var StandardExtensions = []string{".jpg", ".jpeg", ".jpe", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// NormalizeFormat maps format aliases onto encoder names.
func NormalizeFormat(format string) string {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "jpg", "jpe":
		return "jpeg"
	case "tif":
		return "tiff"
	default:
		return f
	}
}

// CanEncode reports whether Encode supports format.
func CanEncode(format string) bool {
	switch NormalizeFormat(format) {
	case "jpeg", "png", "gif", "bmp", "tiff":
		return true
	default:
		return false
	}
}

// Standard converts with the Go image packages.
type Standard struct{}

func (Standard) Name() string { return "standard" }

func (Standard) Convert(ctx context.Context, src, dst, format string) error {
	if !CanEncode(format) {
		return fmt.Errorf("%w: output format %q", ErrUnsupportedFormat, format)
	}

	img, err := DecodeFile(src)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return EncodeFile(dst, ToRGB(img), format)
}

func (Standard) Decode(_ context.Context, src string) (image.Image, error) {
	return DecodeFile(src)
}

// DecodeFile decodes the image at path, sniffing its format from content.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrDecode, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return img, nil
}

// EncodeFile writes img to dst in format without leaving partial output.
func EncodeFile(dst string, img image.Image, format string) error {
	return WriteAtomic(dst, func(w io.Writer) error {
		return Encode(w, img, format)
	})
}

func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch NormalizeFormat(format) {
	case "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case "png":
		err = png.Encode(w, img)
	case "gif":
		err = gif.Encode(w, img, nil)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: output format %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrWrite, format, err)
	}
	return nil
}

// ToRGB drops alpha and palette information, keeping each pixel's
// unpremultiplied color with full opacity.
func ToRGB(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)

	switch src := img.(type) {
	case *image.NRGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			si := src.PixOffset(bounds.Min.X, y)
			di := out.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x, si, di = x+1, si+4, di+4 {
				copy(out.Pix[di:di+3], src.Pix[si:si+3])
				out.Pix[di+3] = 0xff
			}
		}
	case *image.RGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			si := src.PixOffset(bounds.Min.X, y)
			di := out.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x, si, di = x+1, si+4, di+4 {
				unpremultiply(out.Pix[di:di+4], src.Pix[si:si+4])
			}
		}
	case *image.YCbCr:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			di := out.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x, di = x+1, di+4 {
				yi, ci := src.YOffset(x, y), src.COffset(x, y)
				r, g, b := color.YCbCrToRGB(src.Y[yi], src.Cb[ci], src.Cr[ci])
				out.Pix[di], out.Pix[di+1], out.Pix[di+2], out.Pix[di+3] = r, g, b, 0xff
			}
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
			}
		}
	}
	return out
}

// unpremultiply writes the opaque form of one premultiplied RGBA pixel,
// rounding the same way color.NRGBAModel does.
func unpremultiply(dst, src []uint8) {
	a := uint32(src[3])
	switch a {
	case 0xff:
		copy(dst[:3], src[:3])
	case 0:
		dst[0], dst[1], dst[2] = 0, 0, 0
	default:
		for i := 0; i < 3; i++ {
			dst[i] = uint8((uint32(src[i]) * 0xffff / a) >> 8)
		}
	}
	dst[3] = 0xff
}
