package wavelet

import (
	"fmt"
	"math"

	"github.com/AnyUserName/pixkit/internal/raster"
)

// Matrix is a square, row-major block of coefficients for one channel.
type Matrix struct {
	Size int
	Data []float64
}

// NewMatrix allocates a zeroed size×size matrix.
func NewMatrix(size int) *Matrix {
	return &Matrix{Size: size, Data: make([]float64, size*size)}
}

// At returns the value at row r, column c.
func (m *Matrix) At(r, c int) float64 { return m.Data[r*m.Size+c] }

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v float64) { m.Data[r*m.Size+c] = v }

// row returns the first n values of row r (a copy).
func (m *Matrix) row(r, n int) []float64 {
	return append([]float64(nil), m.Data[r*m.Size:r*m.Size+n]...)
}

func (m *Matrix) setRow(r int, v []float64) {
	copy(m.Data[r*m.Size:], v)
}

// col returns the first n values of column c.
func (m *Matrix) col(c, n int) []float64 {
	v := make([]float64, n)
	for r := 0; r < n; r++ {
		v[r] = m.Data[r*m.Size+c]
	}
	return v
}

func (m *Matrix) setCol(c int, v []float64) {
	for r, x := range v {
		m.Data[r*m.Size+c] = x
	}
}

// Forward2D transforms m in place.  Starting with the whole matrix, every
// row and then every column of the active top-left block is transformed;
// the block then halves until it is 1×1.
func (m *Matrix) Forward2D() {
	for n := m.Size; n > 1; n /= 2 {
		for r := 0; r < n; r++ {
			m.setRow(r, Forward1D(m.row(r, n)))
		}
		for c := 0; c < n; c++ {
			m.setCol(c, Forward1D(m.col(c, n)))
		}
	}
}

// Inverse2D undoes Forward2D: the active block grows from 2×2 to the
// whole matrix, inverting columns and then rows at each size.
func (m *Matrix) Inverse2D() {
	for n := 2; n <= m.Size; n *= 2 {
		for c := 0; c < n; c++ {
			m.setCol(c, Inverse1D(m.col(c, n)))
		}
		for r := 0; r < n; r++ {
			m.setRow(r, Inverse1D(m.row(r, n)))
		}
	}
}

// Threshold zeroes every coefficient whose magnitude is below t.
func (m *Matrix) Threshold(t float64) {
	for i, v := range m.Data {
		if math.Abs(v) < t {
			m.Data[i] = 0
		}
	}
}

// Channel selects one colour channel of a pixel.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

func (c Channel) of(p raster.Pixel) int {
	switch c {
	case ChannelGreen:
		return p.G
	case ChannelBlue:
		return p.B
	}
	return p.R
}

// Pad copies channel c of img into the top-left of a size×size matrix;
// the remainder is zero.
func Pad(img *raster.Image, c Channel, size int) *Matrix {
	m := NewMatrix(size)
	for y := 0; y < img.Height(); y++ {
		for x, p := range img.Row(y) {
			m.Set(y, x, float64(c.of(p)))
		}
	}
	return m
}
