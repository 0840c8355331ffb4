package encoder

import (
	"bytes"
	"image"
	"io"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/raster"
)

// TextEncoder writes one of the plain-text raster formats. Quality is
// ignored.
type TextEncoder struct {
	name   string
	ext    string
	encode func(io.Writer, *raster.Image) error
}

var (
	PPM  = &TextEncoder{name: "ppm", ext: "ppm", encode: codec.EncodePPM}
	Grid = &TextEncoder{name: "grid", ext: "grid", encode: codec.EncodeGrid}
)

func (e *TextEncoder) Format() string    { return e.name }
func (e *TextEncoder) Extension() string { return e.ext }
func (e *TextEncoder) Available() bool   { return true }

func (e *TextEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	r, ok := img.(*raster.Image)
	if !ok {
		var err error
		if r, err = raster.FromImage(img); err != nil {
			return nil, err
		}
	}
	var buf bytes.Buffer
	buf.Grow(r.Width() * r.Height() * 12)
	if err := e.encode(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
