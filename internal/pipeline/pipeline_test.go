package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/manifest"
	"github.com/AnyUserName/pixkit/internal/profile"
	"github.com/AnyUserName/pixkit/internal/raster"
)

func gradient(w, h int) *raster.Image {
	img := raster.MustNew(w, h)
	for y := 0; y < h; y++ {
		row := img.Row(y)
		for x := range row {
			row[x] = raster.Pixel{R: x * 255 / w, G: y * 255 / h, B: 128}
		}
	}
	return img
}

func writePPM(t *testing.T, path string, img *raster.Image) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, codec.EncodePPM(f, img))
}

func TestScanImages(t *testing.T) {
	dir := t.TempDir()
	writePPM(t, filepath.Join(dir, "b.ppm"), gradient(2, 2))
	writePPM(t, filepath.Join(dir, "sub", "a.PPM"), gradient(2, 2))
	writePPM(t, filepath.Join(dir, ".hidden", "c.ppm"), gradient(2, 2))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("1 1 0 0 0"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.grid"), []byte("1 1 0 0 0"), 0o644))

	sources, err := ScanImages(dir)
	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, "b", sources[0].Key)
	assert.Equal(t, "c", sources[1].Key)
	assert.Equal(t, "grid", sources[1].Format)
	assert.Equal(t, "sub/a", sources[2].Key)
	assert.Equal(t, "sub/a.PPM", sources[2].RelPath)
	assert.Equal(t, "ppm", sources[2].Format)
}

func TestRun(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writePPM(t, filepath.Join(in, "photos", "wide.ppm"), gradient(8, 4))
	writePPM(t, filepath.Join(in, "tiny.ppm"), gradient(2, 2))

	var mu sync.Mutex
	var logs []string
	p := New(Config{
		InputDir:  in,
		OutputDir: out,
		Workers:   2,
		Profile: profile.Profile{
			Name:    "test",
			Steps:   []string{"luma-component", "brighten 5"},
			Widths:  []int{4, 8},
			Formats: []string{"png", "ppm"},
			Quality: 90,
		},
		Logf: func(format string, args ...any) {
			mu.Lock()
			defer mu.Unlock()
			logs = append(logs, format)
		},
	})

	m, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, logs)
	assert.Equal(t, []string{"luma-component", "brighten 5"}, m.Steps)
	require.Len(t, m.Assets, 2)

	wide := m.Assets["photos/wide"]
	assert.Equal(t, 8, wide.Original.Width)
	assert.Equal(t, 2.0, wide.AspectRatio)
	require.Len(t, wide.Variants, 4)
	assert.Equal(t, 4, wide.Variants[0].Width)
	assert.Equal(t, 2, wide.Variants[0].Height)
	assert.True(t, strings.HasPrefix(wide.Variants[0].Path, "photos/wide.4.2."))

	// Luma output is gray, so the channel averages agree.
	require.NotNil(t, wide.AvgColor)
	assert.Equal(t, wide.AvgColor[0], wide.AvgColor[1])

	// tiny is narrower than every width and keeps its own size.
	tiny := m.Assets["tiny"]
	require.Len(t, tiny.Variants, 2)
	assert.Equal(t, 2, tiny.Variants[0].Width)

	// Written variants decode back to the recorded size.
	for _, v := range wide.Variants {
		img, err := codec.Load(filepath.Join(out, filepath.FromSlash(v.Path)))
		require.NoError(t, err, v.Path)
		assert.Equal(t, v.Width, img.Width())
		assert.Equal(t, v.Height, img.Height())
	}

	assert.Equal(t, 6, m.Stats.TotalVariants)
	assert.Empty(t, m.Validate(out))
}

func TestRun_PartialFailure(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writePPM(t, filepath.Join(in, "good.ppm"), gradient(4, 4))
	require.NoError(t, os.WriteFile(filepath.Join(in, "bad.ppm"), []byte("P6 nonsense"), 0o644))

	m, err := New(Config{InputDir: in, OutputDir: out, Profile: profile.Get("original")}).Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, m.Assets, 1)
	assert.Equal(t, 1, m.Stats.Failed)
}

func TestRun_OversizedHeaderFailsOneImage(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writePPM(t, filepath.Join(in, "good.ppm"), gradient(4, 4))
	require.NoError(t, os.WriteFile(filepath.Join(in, "huge.grid"), []byte("100000000 100000000\n1 2 3"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "wrap.ppm"), []byte("P3\n4611686018427387904 4\n255\n1 2 3"), 0o644))

	m, err := New(Config{InputDir: in, OutputDir: out, Profile: profile.Get("original")}).Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, m.Assets, 1)
	assert.Equal(t, 2, m.Stats.Failed)
}

func TestRun_AllFail(t *testing.T) {
	in := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "bad.ppm"), []byte("P6"), 0o644))

	_, err := New(Config{InputDir: in, OutputDir: t.TempDir(), Profile: profile.Get("original")}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 1 images failed")
}

func TestRun_BadSteps(t *testing.T) {
	p := profile.Get("original")
	p.Steps = []string{"emboss"}
	_, err := New(Config{InputDir: t.TempDir(), OutputDir: t.TempDir(), Profile: p}).Run(context.Background())
	assert.ErrorIs(t, err, raster.ErrInvalidParameter)
}

func TestRun_NoImages(t *testing.T) {
	_, err := New(Config{InputDir: t.TempDir(), OutputDir: t.TempDir()}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no images found")
}

func TestRun_Cancelled(t *testing.T) {
	in := t.TempDir()
	writePPM(t, filepath.Join(in, "a.ppm"), gradient(4, 4))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(Config{InputDir: in, OutputDir: t.TempDir(), Profile: profile.Get("original")}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_ManifestWritable(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writePPM(t, filepath.Join(in, "a.ppm"), gradient(4, 4))

	m, err := New(Config{InputDir: in, OutputDir: out, Profile: profile.Get("grayscale")}).Run(context.Background())
	require.NoError(t, err)

	path := filepath.Join(out, manifest.FileName)
	require.NoError(t, manifest.WriteJSON(m, path))
	m2, err := manifest.ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "grayscale", m2.Profile)
	assert.Empty(t, m2.Validate(out))
}
