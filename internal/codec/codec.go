// Package codec decodes source images and re-encodes them in a target format.
package codec

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"strings"
)

var (
	ErrDecode            = errors.New("decode failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrWrite             = errors.New("write failed")
)

// Kind classifies a conversion error.
type Kind string

const (
	KindNone        Kind = ""
	KindDecode      Kind = "decode"
	KindUnsupported Kind = "unsupported"
	KindWrite       Kind = "write"
	KindUnknown     Kind = "unknown"
)

// KindOf maps err onto the closed set of conversion failures.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUnsupportedFormat):
		return KindUnsupported
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrWrite):
		return KindWrite
	default:
		return KindUnknown
	}
}

// Codec converts the image at src into format and writes it to dst.
// Implementations must not leave a partial file at dst on failure.
type Codec interface {
	Name() string
	Convert(ctx context.Context, src, dst, format string) error
}

// Decoder is implemented by codecs that can return decoded pixels, used for
// previews.
type Decoder interface {
	Decode(ctx context.Context, src string) (image.Image, error)
}

// Ext returns the lower-cased extension of path including the dot.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// BaseName returns the file name of path without its extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
