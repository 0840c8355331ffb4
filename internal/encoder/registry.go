package encoder

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// priority is the order formats are listed and chosen in.
var priority = []string{"png", "jpeg", "ppm", "bmp", "tiff", "gif", "grid"}

// Registry holds all available encoders and selects one per format.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	all := []Encoder{PNG, JPEG, PPM, BMP, TIFF, GIF, Grid}
	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}

	return r
}

// NormalizeFormat maps aliases ("jpg", "tif", ".PNG") to format names.
func NormalizeFormat(format string) string {
	f := strings.TrimPrefix(strings.ToLower(format), ".")
	switch f {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return f
}

// FormatFromPath returns the format implied by path's extension.
func FormatFromPath(path string) string {
	return NormalizeFormat(filepath.Ext(path))
}

// Get returns an encoder for the given format, or nil if unavailable.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[NormalizeFormat(format)]
}

// Available returns all available format names.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range priority {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// ResolveFormats filters requested formats to only those available,
// dropping duplicates.  PNG is the fallback when nothing survives.
func (r *Registry) ResolveFormats(requested []string) []string {
	var resolved []string
	seen := map[string]bool{}

	for _, f := range requested {
		f = NormalizeFormat(f)
		if _, ok := r.encoders[f]; ok && !seen[f] {
			resolved = append(resolved, f)
			seen[f] = true
		}
	}

	if len(resolved) == 0 && r.encoders["png"] != nil {
		resolved = append(resolved, "png")
	}
	return resolved
}

// Save encodes img in format (or the format implied by path when format
// is empty) and writes it to path.
func (r *Registry) Save(img image.Image, path, format string, quality int) error {
	if format == "" {
		format = FormatFromPath(path)
	}
	enc := r.Get(format)
	if enc == nil {
		return fmt.Errorf("unsupported format %q (have %s)", format, strings.Join(r.Available(), ", "))
	}
	data, err := enc.Encode(img, quality)
	if err != nil {
		return fmt.Errorf("encode %s: %w", enc.Format(), err)
	}
	return os.WriteFile(path, data, 0o644)
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
