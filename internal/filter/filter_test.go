package filter

import (
	"testing"

	"github.com/AnyUserName/pixkit/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample2x2 is red, green / blue, white.
func sample2x2(t *testing.T) *raster.Image {
	t.Helper()
	img, err := raster.FromRows([][]raster.Pixel{
		{raster.Red, raster.Green},
		{raster.Blue, raster.White},
	})
	require.NoError(t, err)
	return img
}

func uniform(w, h, v int) *raster.Image {
	img := raster.MustNew(w, h)
	img.Fill(raster.Gray(v))
	return img
}

// gradient returns an image whose pixels all differ from their neighbours.
func gradient(w, h int) *raster.Image {
	img := raster.MustNew(w, h)
	for y := 0; y < h; y++ {
		row := img.Row(y)
		for x := range row {
			row[x] = raster.Pixel{R: (x * 37) % 256, G: (y * 53) % 256, B: (x*11 + y*7) % 256}
		}
	}
	return img
}

func pixel(t *testing.T, img *raster.Image, x, y int) raster.Pixel {
	t.Helper()
	p, err := img.PixelAt(x, y)
	require.NoError(t, err)
	return p
}

func TestRedComponent_Sample(t *testing.T) {
	out := Apply(RedComponent, sample2x2(t))
	assert.Equal(t, raster.White, pixel(t, out, 0, 0))
	assert.Equal(t, raster.Black, pixel(t, out, 1, 0))
	assert.Equal(t, raster.Black, pixel(t, out, 0, 1))
	assert.Equal(t, raster.White, pixel(t, out, 1, 1))
}

func TestLumaComponent_Sample(t *testing.T) {
	out := Apply(LumaComponent, sample2x2(t))
	want := []int{54, 182, 18, 254}
	coords := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, c := range coords {
		p := pixel(t, out, c[0], c[1])
		assert.InDelta(t, want[i], p.R, 1, "pixel %v", c)
		assert.Equal(t, p.R, p.G)
		assert.Equal(t, p.R, p.B)
	}
}

func TestPointFormulas(t *testing.T) {
	p := raster.Pixel{R: 100, G: 50, B: 201}
	cases := []struct {
		f    *Point
		want raster.Pixel
	}{
		{RedComponent, raster.Gray(100)},
		{GreenComponent, raster.Gray(50)},
		{BlueComponent, raster.Gray(201)},
		{ValueComponent, raster.Gray(201)},
		{IntensityComponent, raster.Gray(117)},
		// 21.26 + 35.76 + 14.5122 = 71.53
		{LumaComponent, raster.Gray(72)},
		// 115.739, 102.968, 80.231
		{Sepia, raster.Pixel{R: 116, G: 103, B: 80}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.f.Map(p), c.f.Name())
	}
}

func TestIntensity_Truncates(t *testing.T) {
	assert.Equal(t, raster.Gray(1), IntensityComponent.Map(raster.Pixel{R: 1, G: 1, B: 2}))
	assert.Equal(t, raster.Gray(2), IntensityComponent.Map(raster.Pixel{R: 2, G: 2, B: 4}))
}

func TestSepia_ClampsWhite(t *testing.T) {
	assert.Equal(t, raster.Pixel{R: 255, G: 255, B: 239}, Sepia.Map(raster.White))
}

func TestBlur_Uniform(t *testing.T) {
	out := Apply(Blur, uniform(3, 3, 16))
	// Corners keep 9/16 of the weight, edges 12/16, the centre all of it.
	want := [][]int{
		{9, 12, 9},
		{12, 16, 12},
		{9, 12, 9},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, raster.Gray(want[y][x]), pixel(t, out, x, y), "(%d,%d)", x, y)
		}
	}
}

func TestSharpen_Uniform(t *testing.T) {
	out := Apply(Sharpen, uniform(5, 5, 8))
	assert.Equal(t, raster.Gray(8), pixel(t, out, 2, 2))
	// Corner sees centre 1, three inner weights and five outer weights: 1.125.
	assert.Equal(t, raster.Gray(9), pixel(t, out, 0, 0))
}

func TestSharpen_ClampsHigh(t *testing.T) {
	out := Apply(Sharpen, uniform(5, 5, 250))
	assert.Equal(t, raster.Gray(255), pixel(t, out, 0, 0))
}

func TestKernelWeightsSumToOne(t *testing.T) {
	for _, k := range []*Kernel{Blur, Sharpen} {
		var sum float64
		for i := 0; i < k.Size(); i++ {
			for j := 0; j < k.Size(); j++ {
				sum += k.Weight(i, j)
			}
		}
		assert.InDelta(t, 1.0, sum, 1e-12, k.Name())
	}
	assert.Equal(t, 1, Blur.Radius())
	assert.Equal(t, 2, Sharpen.Radius())
}

func TestNewKernel_Rejects(t *testing.T) {
	_, err := NewKernel("even", [][]float64{{1, 0}, {0, 1}})
	assert.ErrorIs(t, err, raster.ErrInvalidParameter)
	_, err = NewKernel("ragged", [][]float64{{1, 0, 0}, {0, 1}, {0, 0, 1}})
	assert.ErrorIs(t, err, raster.ErrInvalidParameter)
	_, err = NewKernel("empty", nil)
	assert.ErrorIs(t, err, raster.ErrInvalidParameter)
}

func TestApply_DoesNotMutateSource(t *testing.T) {
	src := gradient(6, 4)
	before := src.Clone()
	for _, name := range Names() {
		f, _ := ByName(name)
		_ = Apply(f, src)
	}
	assert.True(t, before.Equal(src))
}

func TestApplySplit_Boundary(t *testing.T) {
	src := gradient(10, 5)
	for _, name := range Names() {
		f, ok := ByName(name)
		require.True(t, ok)
		full := Apply(f, src)
		for _, pct := range []int{0, 25, 50, 99, 100} {
			out, err := ApplySplit(f, src, pct)
			require.NoError(t, err)
			split := SplitPoint(src.Width(), pct)
			for y := 0; y < src.Height(); y++ {
				for x := 0; x < src.Width(); x++ {
					if x < split {
						assert.Equal(t, pixel(t, full, x, y), pixel(t, out, x, y),
							"%s@%d (%d,%d) filtered", name, pct, x, y)
					} else {
						assert.Equal(t, pixel(t, src, x, y), pixel(t, out, x, y),
							"%s@%d (%d,%d) copied", name, pct, x, y)
					}
				}
			}
		}
	}
}

func TestApplySplit_RejectsOutOfRange(t *testing.T) {
	src := uniform(4, 4, 10)
	for _, pct := range []int{-1, 101, 1000} {
		_, err := ApplySplit(Blur, src, pct)
		assert.ErrorIs(t, err, raster.ErrInvalidParameter, "pct=%d", pct)
	}
}

func TestSplitPoint(t *testing.T) {
	assert.Equal(t, 0, SplitPoint(7, 0))
	assert.Equal(t, 3, SplitPoint(7, 50))
	assert.Equal(t, 7, SplitPoint(7, 100))
	assert.Equal(t, 0, SplitPoint(1, 99))
}

func TestByName(t *testing.T) {
	f, ok := ByName("Blur")
	require.True(t, ok)
	assert.Equal(t, "blur", f.Name())
	_, ok = ByName("emboss")
	assert.False(t, ok)
	assert.Len(t, Names(), 9)
}

func BenchmarkBlur(b *testing.B) {
	src := gradient(256, 256)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Apply(Blur, src)
	}
}

func BenchmarkSharpen(b *testing.B) {
	src := gradient(256, 256)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Apply(Sharpen, src)
	}
}
