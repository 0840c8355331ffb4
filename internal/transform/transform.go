// Package transform implements geometric and intensity transforms:
// flips, brightening and bilinear downscaling.
package transform

import (
	"fmt"
	"math"

	"github.com/AnyUserName/pixkit/internal/raster"
)

// FlipHorizontal mirrors src left to right.
func FlipHorizontal(src *raster.Image) *raster.Image {
	dst := src.Clone()
	w := src.Width()
	for y := 0; y < src.Height(); y++ {
		in, out := src.Row(y), dst.Row(y)
		for x := range out {
			out[x] = in[w-1-x]
		}
	}
	return dst
}

// FlipVertical mirrors src top to bottom.
func FlipVertical(src *raster.Image) *raster.Image {
	dst := src.Clone()
	h := src.Height()
	for y := 0; y < h; y++ {
		copy(dst.Row(y), src.Row(h-1-y))
	}
	return dst
}

// Brighten adds factor to every channel, clamping to [0, 255].
// A negative factor darkens.
func Brighten(src *raster.Image, factor int) *raster.Image {
	dst := src.Clone()
	for y := 0; y < dst.Height(); y++ {
		row := dst.Row(y)
		for x, p := range row {
			row[x] = raster.Pixel{R: p.R + factor, G: p.G + factor, B: p.B + factor}.Clamp()
		}
	}
	return dst
}

// Downscale resamples src to width×height with bilinear interpolation.
// Target sizes must be positive and no larger than the source.
func Downscale(src *raster.Image, width, height int) (*raster.Image, error) {
	sw, sh := src.Width(), src.Height()
	if width <= 0 || height <= 0 || width > sw || height > sh {
		return nil, fmt.Errorf("%w: downscale %dx%d to %dx%d",
			raster.ErrInvalidParameter, sw, sh, width, height)
	}
	dst, err := raster.New(width, height)
	if err != nil {
		return nil, err
	}

	xRatio := float64(sw) / float64(width)
	yRatio := float64(sh) / float64(height)
	for y := 0; y < height; y++ {
		sy := float64(y) * yRatio
		y0 := int(math.Floor(sy))
		y1 := min(y0+1, sh-1)
		dy := sy - float64(y0)
		top, bottom := src.Row(y0), src.Row(y1)
		out := dst.Row(y)
		for x := 0; x < width; x++ {
			sx := float64(x) * xRatio
			x0 := int(math.Floor(sx))
			x1 := min(x0+1, sw-1)
			dx := sx - float64(x0)
			c00, c10 := top[x0], top[x1]
			c01, c11 := bottom[x0], bottom[x1]
			out[x] = raster.Pixel{
				R: bilerp(c00.R, c10.R, c01.R, c11.R, dx, dy),
				G: bilerp(c00.G, c10.G, c01.G, c11.G, dx, dy),
				B: bilerp(c00.B, c10.B, c01.B, c11.B, dx, dy),
			}
		}
	}
	return dst, nil
}

func bilerp(c00, c10, c01, c11 int, dx, dy float64) int {
	top := float64(c00)*(1-dx) + float64(c10)*dx
	bottom := float64(c01)*(1-dx) + float64(c11)*dx
	return raster.ClampChannel(int(math.Round(top*(1-dy) + bottom*dy)))
}
