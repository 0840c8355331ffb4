// Package raster holds the in-memory pixel grid every pixkit operation
// consumes and produces.
//
// An Image is a dense, row-major width×height grid of Pixel.  Engine
// operations never mutate their inputs; they allocate a fresh Image of the
// output size.  Equality and hashing always walk the full grid.
package raster

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Image is a mutable RGB raster.  The zero value is a 0×0 image.
type Image struct {
	width  int
	height int
	pix    []Pixel // row-major, len = width*height
}

// MaxPixels bounds width*height for any image. Larger requests, and
// requests whose product overflows int, fail with ErrInvalidDimensions.
const MaxPixels = 1 << 28

// New allocates a black width×height image.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidDimensions, width, height, MaxPixels)
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

// MustNew is New for sizes known to be valid.  It panics on bad input.
func MustNew(width, height int) *Image {
	img, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return img
}

// FromRows builds an image from rows[y][x].  An empty grid yields a
// degenerate 0×0 image; rows of differing length are rejected.
func FromRows(rows [][]Pixel) (*Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &Image{}, nil
	}
	w, h := len(rows[0]), len(rows)
	img := &Image{width: w, height: h, pix: make([]Pixel, 0, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d",
				ErrInvalidDimensions, y, len(row), w)
		}
		img.pix = append(img.pix, row...)
	}
	return img, nil
}

// Width returns the number of columns.
func (m *Image) Width() int { return m.width }

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// Empty reports whether the image has zero area.
func (m *Image) Empty() bool { return m.width == 0 || m.height == 0 }

// PixelAt returns the pixel at column x, row y.
func (m *Image) PixelAt(x, y int) (Pixel, error) {
	if !m.inBounds(x, y) {
		return Pixel{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.pix[y*m.width+x], nil
}

// SetPixel replaces the pixel at column x, row y.
func (m *Image) SetPixel(x, y int, p Pixel) error {
	if !m.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}
	m.pix[y*m.width+x] = p
	return nil
}

// Row returns row y as a slice aliasing the image storage.
// Writes through the slice modify the image.  Panics if y is out of range.
func (m *Image) Row(y int) []Pixel {
	if y < 0 || y >= m.height {
		panic(fmt.Sprintf("raster: row %d out of range [0,%d)", y, m.height))
	}
	return m.pix[y*m.width : (y+1)*m.width]
}

// Fill sets every pixel to p.
func (m *Image) Fill(p Pixel) {
	for i := range m.pix {
		m.pix[i] = p
	}
}

// Clone returns a deep copy.
func (m *Image) Clone() *Image {
	c := &Image{width: m.width, height: m.height, pix: make([]Pixel, len(m.pix))}
	copy(c.pix, m.pix)
	return c
}

// SameSize reports whether m and o have identical dimensions.
func (m *Image) SameSize(o *Image) bool {
	return m.width == o.width && m.height == o.height
}

// Equal reports whether both images have the same size and content.
func (m *Image) Equal(o *Image) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || !m.SameSize(o) {
		return false
	}
	for i, p := range m.pix {
		if o.pix[i] != p {
			return false
		}
	}
	return true
}

// Hash returns the xxHash64 of the dimensions and every channel value.
// Equal images hash equally.
func (m *Image) Hash() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 8+12*m.width)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(m.width))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(m.height))
	d.Write(buf)
	for y := 0; y < m.height; y++ {
		buf = buf[:0]
		for _, p := range m.Row(y) {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(p.R)))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(p.G)))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(p.B)))
		}
		d.Write(buf)
	}
	return d.Sum64()
}

func (m *Image) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}
