package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToBlack(t *testing.T) {
	img, err := New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Width())
	assert.Equal(t, 2, img.Height())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			p, err := img.PixelAt(x, y)
			require.NoError(t, err)
			assert.Equal(t, Black, p)
		}
	}
}

func TestNew_RejectsNonPositive(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 3}, {0, 0}} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%dx%d", dims[0], dims[1])
	}
}

func TestNew_RejectsOversized(t *testing.T) {
	for _, dims := range [][2]int{
		{MaxPixels, 2},
		{100000000, 100000000},
		{1 << 62, 4}, // product overflows int
	} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%dx%d", dims[0], dims[1])
	}
}

func TestFromRows(t *testing.T) {
	img, err := FromRows([][]Pixel{
		{Red, Green},
		{Blue, White},
	})
	require.NoError(t, err)
	p, err := img.PixelAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, White, p)
	p, err = img.PixelAt(0, 1)
	require.NoError(t, err)
	assert.Equal(t, Blue, p)
}

func TestFromRows_EmptyIsDegenerate(t *testing.T) {
	img, err := FromRows(nil)
	require.NoError(t, err)
	assert.True(t, img.Empty())
	assert.Equal(t, 0, img.Width())

	_, err = img.PixelAt(0, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := FromRows([][]Pixel{{Red, Green}, {Blue}})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestOutOfBounds(t *testing.T) {
	img := MustNew(2, 2)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := img.PixelAt(c[0], c[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.ErrorIs(t, img.SetPixel(c[0], c[1], Red), ErrOutOfBounds)
	}
}

func TestEqualAndHash(t *testing.T) {
	a := MustNew(4, 3)
	b := MustNew(4, 3)
	require.NoError(t, a.SetPixel(2, 1, Pixel{10, 20, 30}))
	require.NoError(t, b.SetPixel(2, 1, Pixel{10, 20, 30}))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	require.NoError(t, b.SetPixel(0, 0, Pixel{0, 0, 1}))
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())

	// Same pixel count, different shape.
	assert.False(t, MustNew(2, 6).Equal(MustNew(6, 2)))
	assert.NotEqual(t, MustNew(2, 6).Hash(), MustNew(6, 2).Hash())
}

func TestClone_IsDeep(t *testing.T) {
	a := MustNew(2, 2)
	c := a.Clone()
	require.NoError(t, c.SetPixel(0, 0, White))
	p, _ := a.PixelAt(0, 0)
	assert.Equal(t, Black, p)
}

func TestClampChannel(t *testing.T) {
	assert.Equal(t, 0, ClampChannel(-5))
	assert.Equal(t, 255, ClampChannel(300))
	assert.Equal(t, 42, ClampChannel(42))
	assert.Equal(t, Pixel{0, 255, 7}, Pixel{-1, 256, 7}.Clamp())
}

func TestImageInterfaceRoundtrip(t *testing.T) {
	src := MustNew(2, 1)
	require.NoError(t, src.SetPixel(0, 0, Pixel{12, 34, 56}))
	require.NoError(t, src.SetPixel(1, 0, Pixel{300, -4, 255}))

	nrgba := src.ToNRGBA()
	assert.Equal(t, color.NRGBA{255, 0, 255, 255}, nrgba.NRGBAAt(1, 0))

	back, err := FromImage(src)
	require.NoError(t, err)
	p, _ := back.PixelAt(0, 0)
	assert.Equal(t, Pixel{12, 34, 56}, p)
	p, _ = back.PixelAt(1, 0)
	assert.Equal(t, Pixel{255, 0, 255}, p)
}

func TestFromImage_OffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.SetRGBA(6, 5, color.RGBA{1, 2, 3, 255})
	img, err := FromImage(src)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width())
	p, _ := img.PixelAt(1, 0)
	assert.Equal(t, Pixel{1, 2, 3}, p)
}
