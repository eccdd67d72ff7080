// Package opencv decodes sources the Go image packages cannot read.
package opencv

import (
	"context"
	"fmt"
	"image"
	"os"

	"image-converter/internal/codec"

	"gocv.io/x/gocv"
)

// Extensions are formats OpenCV reads that the standard codec does not.
var Extensions = []string{".pbm", ".pgm", ".ppm", ".pnm", ".pxm", ".jp2", ".sr", ".ras", ".exr", ".hdr", ".pic"}

type Codec struct{}

func (Codec) Name() string { return "opencv" }

func (Codec) Convert(ctx context.Context, src, dst, format string) error {
	if !codec.CanEncode(format) {
		return fmt.Errorf("%w: output format %q", codec.ErrUnsupportedFormat, format)
	}
	img, err := Codec{}.Decode(ctx, src)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return codec.EncodeFile(dst, codec.ToRGB(img), format)
}

func (Codec) Decode(_ context.Context, src string) (image.Image, error) {
	if _, err := os.Stat(src); err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", codec.ErrDecode, src, err)
	}

	mat := gocv.IMRead(src, gocv.IMReadColor)
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("%w: opencv could not read %s", codec.ErrDecode, src)
	}

	img, err := to8Bit(mat).ToImage()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", codec.ErrDecode, src, err)
	}
	return img, nil
}

// EXR and HDR load as float mats in [0,1]; ToImage only takes 8-bit ones.
var scaled = map[gocv.MatType]float32{
	gocv.MatTypeCV32FC3: 255,
	gocv.MatTypeCV64FC3: 255,
	gocv.MatTypeCV16UC3: 1.0 / 257,
}

func to8Bit(mat gocv.Mat) gocv.Mat {
	alpha, ok := scaled[mat.Type()]
	if !ok {
		return mat
	}
	mat.ConvertToWithParams(&mat, gocv.MatTypeCV8UC3, alpha, 0)
	return mat
}

// Register routes Extensions in r to the OpenCV codec.
func Register(r *codec.Registry) {
	r.Register(Codec{}, Extensions...)
}
