// Package compose combines several images pixel by pixel: mask-driven
// partial application and RGB channel split / combine.
package compose

import (
	"fmt"

	"github.com/AnyUserName/pixkit/internal/raster"
)

// Mask takes filtered's pixel wherever mask is pure white and original's
// pixel everywhere else.  All three images must share one size.
func Mask(original, filtered, mask *raster.Image) (*raster.Image, error) {
	if err := sameSize(original, filtered, mask); err != nil {
		return nil, err
	}
	dst := original.Clone()
	for y := 0; y < dst.Height(); y++ {
		out, f, m := dst.Row(y), filtered.Row(y), mask.Row(y)
		for x := range out {
			if m[x] == raster.White {
				out[x] = f[x]
			}
		}
	}
	return dst, nil
}

// SplitRGB returns three greyscale images replicating the red, green and
// blue channel of src respectively.
func SplitRGB(src *raster.Image) (r, g, b *raster.Image) {
	r, g, b = src.Clone(), src.Clone(), src.Clone()
	for y := 0; y < src.Height(); y++ {
		rr, gr, br := r.Row(y), g.Row(y), b.Row(y)
		for x, p := range src.Row(y) {
			rr[x] = raster.Gray(p.R)
			gr[x] = raster.Gray(p.G)
			br[x] = raster.Gray(p.B)
		}
	}
	return r, g, b
}

// CombineRGB builds an image whose red channel comes from r, green from g
// and blue from b.  The other channels of each input are ignored.
func CombineRGB(r, g, b *raster.Image) (*raster.Image, error) {
	if err := sameSize(r, g, b); err != nil {
		return nil, err
	}
	dst := r.Clone()
	for y := 0; y < dst.Height(); y++ {
		out, gr, br := dst.Row(y), g.Row(y), b.Row(y)
		for x := range out {
			out[x] = raster.Pixel{R: out[x].R, G: gr[x].G, B: br[x].B}
		}
	}
	return dst, nil
}

func sameSize(first *raster.Image, rest ...*raster.Image) error {
	for _, img := range rest {
		if !first.SameSize(img) {
			return fmt.Errorf("%w: %dx%d vs %dx%d", raster.ErrInvalidDimensions,
				first.Width(), first.Height(), img.Width(), img.Height())
		}
	}
	return nil
}
