package hasher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyUserName/pixkit/internal/raster"
)

func TestContentHash_Length(t *testing.T) {
	data := []byte("pixkit")
	assert.Len(t, ContentHash(data, 8), 8)
	assert.Len(t, ContentHash(data, 0), 16)
	assert.Len(t, ContentHash(data, 64), 16)
	assert.Equal(t, ContentHash(data, 16)[:8], ContentHash(data, 8))
}

func TestContentHashReader_MatchesBytes(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3}, 1000)
	got, err := ContentHashReader(bytes.NewReader(data), 16)
	require.NoError(t, err)
	assert.Equal(t, ContentHash(data, 16), got)
}

func TestRasterHash(t *testing.T) {
	a := raster.MustNew(3, 2)
	b := a.Clone()
	assert.Equal(t, RasterHash(a, 16), RasterHash(b, 16))

	require.NoError(t, b.SetPixel(1, 1, raster.White))
	assert.NotEqual(t, RasterHash(a, 16), RasterHash(b, 16))

	// Same pixel count, different shape.
	c := raster.MustNew(2, 3)
	assert.NotEqual(t, RasterHash(a, 16), RasterHash(c, 16))
}
