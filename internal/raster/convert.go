package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Image satisfies image.Image so rasters can go straight to encoders.
var _ image.Image = (*Image)(nil)

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At implements image.Image.  Out-of-range coordinates read as transparent
// black, as image.Image requires; channels are clamped to a byte.
func (m *Image) At(x, y int) color.Color {
	if !m.inBounds(x, y) {
		return color.NRGBA{}
	}
	return m.pix[y*m.width+x].NRGBA()
}

// NRGBA converts p to an opaque color.NRGBA, clamping each channel.
func (p Pixel) NRGBA() color.NRGBA {
	c := p.Clamp()
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}

// ToNRGBA renders the raster into a new *image.NRGBA.
func (m *Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(m.Bounds())
	for y := 0; y < m.height; y++ {
		off := y * dst.Stride
		for _, p := range m.Row(y) {
			c := p.Clamp()
			dst.Pix[off+0] = uint8(c.R)
			dst.Pix[off+1] = uint8(c.G)
			dst.Pix[off+2] = uint8(c.B)
			dst.Pix[off+3] = 255
			off += 4
		}
	}
	return dst
}

// FromImage converts any decoded image into a raster, dropping alpha.
// The image is normalised to NRGBA with imaging.Clone, so premultiplied
// and YCbCr sources read back as their straight RGB values.
func FromImage(src image.Image) (*Image, error) {
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()
	img, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < img.height; y++ {
		off := y * nrgba.Stride
		row := img.Row(y)
		for x := range row {
			row[x] = Pixel{int(nrgba.Pix[off+0]), int(nrgba.Pix[off+1]), int(nrgba.Pix[off+2])}
			off += 4
		}
	}
	return img, nil
}
