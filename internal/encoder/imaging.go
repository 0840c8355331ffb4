package encoder

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// DefaultQuality is used when a lossy encoder is given quality <= 0 or > 100.
const DefaultQuality = 90

// ImagingEncoder encodes through github.com/disintegration/imaging.
type ImagingEncoder struct {
	format   imaging.Format
	name     string
	ext      string
	prealloc int
}

// JPEG, PNG, BMP, TIFF and GIF encoders.
var (
	JPEG = &ImagingEncoder{format: imaging.JPEG, name: "jpeg", ext: "jpg", prealloc: 256 << 10}
	PNG  = &ImagingEncoder{format: imaging.PNG, name: "png", ext: "png", prealloc: 512 << 10}
	BMP  = &ImagingEncoder{format: imaging.BMP, name: "bmp", ext: "bmp", prealloc: 512 << 10}
	TIFF = &ImagingEncoder{format: imaging.TIFF, name: "tiff", ext: "tiff", prealloc: 512 << 10}
	GIF  = &ImagingEncoder{format: imaging.GIF, name: "gif", ext: "gif", prealloc: 128 << 10}
)

func (e *ImagingEncoder) Format() string    { return e.name }
func (e *ImagingEncoder) Extension() string { return e.ext }
func (e *ImagingEncoder) Available() bool   { return true }

func (e *ImagingEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	buf.Grow(e.prealloc)

	err := imaging.Encode(&buf, img, e.format,
		imaging.JPEGQuality(quality),
		imaging.PNGCompressionLevel(png.BestCompression),
		imaging.GIFDrawer(draw.FloydSteinberg),
	)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
