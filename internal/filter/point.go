package filter

import (
	"math"

	"github.com/AnyUserName/pixkit/internal/raster"
)

// PointFunc maps one source pixel to one output pixel.
type PointFunc func(p raster.Pixel) raster.Pixel

// Point is a filter with no neighbourhood access.
type Point struct {
	name string
	fn   PointFunc
}

// NewPoint wraps fn as a named filter.
func NewPoint(name string, fn PointFunc) *Point {
	return &Point{name: name, fn: fn}
}

// Name implements Filter.
func (f *Point) Name() string { return f.name }

// Map applies the filter to a single pixel.
func (f *Point) Map(p raster.Pixel) raster.Pixel { return f.fn(p) }

// Render implements Filter.
func (f *Point) Render(dst, src *raster.Image, limit int) {
	for y := 0; y < src.Height(); y++ {
		in, out := src.Row(y), dst.Row(y)
		for x := 0; x < limit; x++ {
			out[x] = f.fn(in[x])
		}
	}
}

// Channel extraction and tone filters.
var (
	RedComponent = NewPoint("red-component", func(p raster.Pixel) raster.Pixel {
		return raster.Gray(p.R)
	})
	GreenComponent = NewPoint("green-component", func(p raster.Pixel) raster.Pixel {
		return raster.Gray(p.G)
	})
	BlueComponent = NewPoint("blue-component", func(p raster.Pixel) raster.Pixel {
		return raster.Gray(p.B)
	})
	ValueComponent = NewPoint("value-component", func(p raster.Pixel) raster.Pixel {
		return raster.Gray(max(p.R, p.G, p.B))
	})
	IntensityComponent = NewPoint("intensity-component", func(p raster.Pixel) raster.Pixel {
		return raster.Gray((p.R + p.G + p.B) / 3)
	})
	LumaComponent = NewPoint("luma-component", func(p raster.Pixel) raster.Pixel {
		return raster.Gray(weigh(p, 0.2126, 0.7152, 0.0722))
	})
	Sepia = NewPoint("sepia", func(p raster.Pixel) raster.Pixel {
		return raster.Pixel{
			R: weigh(p, 0.393, 0.769, 0.189),
			G: weigh(p, 0.349, 0.686, 0.168),
			B: weigh(p, 0.272, 0.534, 0.131),
		}
	})
)

// weigh returns clamp(round(wr*R + wg*G + wb*B)).
func weigh(p raster.Pixel, wr, wg, wb float64) int {
	v := wr*float64(p.R) + wg*float64(p.G) + wb*float64(p.B)
	return raster.ClampChannel(int(math.Round(v)))
}
