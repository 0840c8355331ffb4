//go:build ignore

// gen_fixtures creates small test images for the E2E smoke test.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/raster"
	"github.com/disintegration/imaging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(filepath.Join(dir, "cards"), 0o755)

	// Banner (JPEG, 400x225)
	save(filepath.Join(dir, "banner.jpg"), gradient(400, 225))

	// Cards (PNG, 200x150 each)
	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("card-%d.png", i)
		save(filepath.Join(dir, "cards", name), solidWithBorder(200, 150, i*60))
	}

	// Plain-text rasters
	writeText(filepath.Join(dir, "swatch.ppm"), gradient(64, 48), codec.EncodePPM)
	writeText(filepath.Join(dir, "tiny.grid"), solidWithBorder(12, 12, 90), codec.EncodeGrid)

	// Mask: white left half
	save(filepath.Join(dir, "mask.png"), halfMask(400, 225))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 7 fixtures in %s\n", dir)
}

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

func solidWithBorder(w, h, base int) *raster.Image {
	img := raster.MustNew(w, h)
	img.Fill(raster.Pixel{R: base, G: base + 40, B: base + 80}.Clamp())
	for y := 0; y < h; y++ {
		row := img.Row(y)
		for x := range row {
			if x < 4 || x >= w-4 || y < 4 || y >= h-4 {
				row[x] = raster.White
			}
		}
	}
	return img
}

func halfMask(w, h int) *raster.Image {
	img := raster.MustNew(w, h)
	for y := 0; y < h; y++ {
		row := img.Row(y)
		for x := 0; x < w/2; x++ {
			row[x] = raster.White
		}
	}
	return img
}

func save(path string, img *raster.Image) {
	if err := imaging.Save(img, path, imaging.JPEGQuality(85)); err != nil {
		panic(err)
	}
}

func writeText(path string, img *raster.Image, encode func(io.Writer, *raster.Image) error) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		panic(err)
	}
}
