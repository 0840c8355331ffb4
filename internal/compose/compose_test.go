package compose

import (
	"testing"

	"github.com/AnyUserName/pixkit/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checker(w, h int) *raster.Image {
	img := raster.MustNew(w, h)
	for y := 0; y < h; y++ {
		row := img.Row(y)
		for x := range row {
			row[x] = raster.Pixel{R: (x * 40) % 256, G: (y * 70) % 256, B: ((x + y) * 25) % 256}
		}
	}
	return img
}

func TestMask(t *testing.T) {
	orig := checker(3, 2)
	filtered := raster.MustNew(3, 2)
	filtered.Fill(raster.Pixel{R: 1, G: 2, B: 3})
	mask := raster.MustNew(3, 2)
	require.NoError(t, mask.SetPixel(1, 0, raster.White))
	require.NoError(t, mask.SetPixel(2, 1, raster.Pixel{R: 255, G: 255, B: 254})) // not pure white

	out, err := Mask(orig, filtered, mask)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			got, _ := out.PixelAt(x, y)
			if x == 1 && y == 0 {
				assert.Equal(t, raster.Pixel{R: 1, G: 2, B: 3}, got)
				continue
			}
			want, _ := orig.PixelAt(x, y)
			assert.Equal(t, want, got, "(%d,%d)", x, y)
		}
	}
}

func TestMask_DimensionMismatch(t *testing.T) {
	_, err := Mask(checker(3, 2), checker(3, 2), checker(2, 3))
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
	_, err = Mask(checker(3, 2), checker(4, 2), checker(3, 2))
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
}

func TestSplitRGB(t *testing.T) {
	src := raster.MustNew(1, 1)
	require.NoError(t, src.SetPixel(0, 0, raster.Pixel{R: 10, G: 20, B: 30}))
	r, g, b := SplitRGB(src)
	p, _ := r.PixelAt(0, 0)
	assert.Equal(t, raster.Gray(10), p)
	p, _ = g.PixelAt(0, 0)
	assert.Equal(t, raster.Gray(20), p)
	p, _ = b.PixelAt(0, 0)
	assert.Equal(t, raster.Gray(30), p)
}

func TestSplitCombine_Roundtrip(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {7, 3}, {16, 9}} {
		src := checker(dims[0], dims[1])
		out, err := CombineRGB(SplitRGB(src))
		require.NoError(t, err)
		assert.True(t, out.Equal(src), "%v", dims)
	}
}

func TestCombineRGB_IgnoresOtherChannels(t *testing.T) {
	r := raster.MustNew(1, 1)
	g := raster.MustNew(1, 1)
	b := raster.MustNew(1, 1)
	r.Fill(raster.Pixel{R: 5, G: 99, B: 99})
	g.Fill(raster.Pixel{R: 99, G: 6, B: 99})
	b.Fill(raster.Pixel{R: 99, G: 99, B: 7})
	out, err := CombineRGB(r, g, b)
	require.NoError(t, err)
	p, _ := out.PixelAt(0, 0)
	assert.Equal(t, raster.Pixel{R: 5, G: 6, B: 7}, p)
}

func TestCombineRGB_DimensionMismatch(t *testing.T) {
	_, err := CombineRGB(checker(2, 2), checker(2, 2), checker(2, 1))
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
}
