package codec

import (
	"slices"
	"strings"
)

// Registry selects a codec by source extension.
type Registry struct {
	fallback Codec
	byExt    map[string]Codec
}

// NewRegistry returns a registry using Standard for every extension it
// decodes and Tool for HEIC/HEIF sources.
func NewRegistry() *Registry {
	r := &Registry{
		fallback: Standard{},
		byExt:    make(map[string]Codec),
	}
	r.Register(Standard{}, StandardExtensions...)
	r.Register(NewTool(), ToolExtensions...)
	return r
}

// Register routes the given extensions to c, replacing earlier routes.
func (r *Registry) Register(c Codec, exts ...string) {
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.byExt[ext] = c
	}
}

// For returns the codec responsible for src.
func (r *Registry) For(src string) Codec {
	if c, ok := r.byExt[Ext(src)]; ok {
		return c
	}
	return r.fallback
}

// DecoderFor returns the decoder of the codec responsible for src, if that
// codec can decode in process.
func (r *Registry) DecoderFor(src string) (Decoder, bool) {
	d, ok := r.For(src).(Decoder)
	return d, ok
}

// IsImage reports whether src has an extension some codec claims.
func (r *Registry) IsImage(src string) bool {
	_, ok := r.byExt[Ext(src)]
	return ok
}

// Extensions lists every registered extension in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}
