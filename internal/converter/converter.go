// Package converter turns a source image path into an output file using the
// persisted output preferences.
package converter

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"image-converter/internal/codec"
	"image-converter/internal/logger"
)

// Settings supplies the output preferences.
type Settings interface {
	SaveLocation() string
	SaveFormat() string
}

// Overrides replace stored preferences for a single call. Empty fields keep
// the stored value.
type Overrides struct {
	SaveLocation string
	SaveFormat   string
}

var ErrNoSource = errors.New("no source image selected")

type Service struct {
	settings Settings
	codecs   *codec.Registry
	logger   logger.Logger
}

func NewService(settings Settings, codecs *codec.Registry, log logger.Logger) *Service {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Service{
		settings: settings,
		codecs:   codecs,
		logger:   log,
	}
}

// Format returns the configured output format.
func (s *Service) Format() string {
	return strings.ToLower(s.settings.SaveFormat())
}

// SaveLocation returns the configured output folder.
func (s *Service) SaveLocation() string {
	return s.settings.SaveLocation()
}

// FailureMessage is the only text shown to users when a conversion fails.
func (s *Service) FailureMessage() string {
	return FailureMessage(s.Format())
}

func FailureMessage(format string) string {
	return fmt.Sprintf("Image could not be converted to .%s!", format)
}

// IsImage reports whether a codec claims src's extension.
func (s *Service) IsImage(src string) bool {
	return s.codecs.IsImage(src)
}

// Decode decodes src with the codec that would convert it. Codecs that only
// work through an external tool cannot decode and yield ErrUnsupportedFormat.
func (s *Service) Decode(ctx context.Context, src string) (image.Image, error) {
	d, ok := s.codecs.DecoderFor(src)
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot be decoded in process", codec.ErrUnsupportedFormat, src)
	}
	return d.Decode(ctx, src)
}

// OutputPath returns <saveLocation>/<baseName>.<format> for src.
func (s *Service) OutputPath(src string) (string, error) {
	return s.outputPath(src, Overrides{})
}

func (s *Service) outputPath(src string, o Overrides) (string, error) {
	if src == "" {
		return "", ErrNoSource
	}
	location, format := s.resolve(o)
	return filepath.Join(location, codec.BaseName(src)+"."+format), nil
}

func (s *Service) resolve(o Overrides) (string, string) {
	location := o.SaveLocation
	if location == "" {
		location = s.settings.SaveLocation()
	}
	format := o.SaveFormat
	if format == "" {
		format = s.settings.SaveFormat()
	}
	return location, strings.ToLower(format)
}

// Convert writes src to OutputPath(src) and returns that path.
func (s *Service) Convert(ctx context.Context, src string) (string, error) {
	return s.ConvertWith(ctx, src, Overrides{})
}

// ConvertWith is Convert with per-call preference overrides.
func (s *Service) ConvertWith(ctx context.Context, src string, o Overrides) (string, error) {
	dst, err := s.outputPath(src, o)
	if err != nil {
		return "", err
	}
	_, format := s.resolve(o)
	c := s.codecs.For(src)

	s.logger.Debug("Converter", "conversion started", map[string]interface{}{
		"source":      src,
		"destination": dst,
		"codec":       c.Name(),
		"format":      format,
	})

	start := time.Now()
	if err := c.Convert(ctx, src, dst, format); err != nil {
		s.logger.Error("Converter", err, map[string]interface{}{
			"source":      src,
			"destination": dst,
			"codec":       c.Name(),
			"kind":        string(codec.KindOf(err)),
		})
		return "", fmt.Errorf("convert %s: %w", src, err)
	}

	s.logger.Info("Converter", "image converted", map[string]interface{}{
		"source":      src,
		"destination": dst,
		"codec":       c.Name(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return dst, nil
}
