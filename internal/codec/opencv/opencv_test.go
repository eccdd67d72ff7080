package opencv

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"

	"image-converter/internal/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePPM(t *testing.T, path string, w, h int) {
	t.Helper()
	data := []byte(fmt.Sprintf("P6\n%d %d\n255\n", w, h))
	for i := 0; i < w*h; i++ {
		data = append(data, byte(i), 128, 255)
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestConvertPPM(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan.ppm")
	writePPM(t, src, 5, 3)
	dst := filepath.Join(dir, "scan.jpeg")

	require.NoError(t, Codec{}.Convert(context.Background(), src, dst, "jpeg"))

	img, err := codec.DecodeFile(dst)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 3), img.Bounds())
}

func TestDecodeFeedsPreview(t *testing.T) {
	src := filepath.Join(t.TempDir(), "scan.ppm")
	writePPM(t, src, 4, 2)

	r := codec.NewRegistry()
	Register(r)
	d, ok := r.DecoderFor(src)
	require.True(t, ok)

	img, err := d.Decode(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
}

func TestConvertUnreadable(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.ppm")
	require.NoError(t, os.WriteFile(src, []byte("not a pixmap"), 0o644))
	dst := filepath.Join(dir, "broken.jpeg")

	err := Codec{}.Convert(context.Background(), src, dst, "jpeg")

	assert.ErrorIs(t, err, codec.ErrDecode)
	assert.NoFileExists(t, dst)
}

func TestRegister(t *testing.T) {
	r := codec.NewRegistry()
	Register(r)

	assert.Equal(t, "opencv", r.For("/scans/page.PGM").Name())
	assert.Equal(t, "standard", r.For("/scans/page.png").Name())
	assert.True(t, r.IsImage("/scans/page.exr"))
}
