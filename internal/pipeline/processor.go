package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/encoder"
	"github.com/AnyUserName/pixkit/internal/hasher"
	"github.com/AnyUserName/pixkit/internal/manifest"
	"github.com/AnyUserName/pixkit/internal/ops"
	"github.com/AnyUserName/pixkit/internal/profile"
	"github.com/AnyUserName/pixkit/internal/raster"
	"github.com/AnyUserName/pixkit/internal/tone"
	"github.com/AnyUserName/pixkit/internal/transform"
)

// errEmptyImage is returned for sources that decode to zero pixels.
var errEmptyImage = errors.New("empty image")

// processResult holds the result of processing a single source image.
type processResult struct {
	key   string
	asset manifest.Asset
	err   error
}

// processImage handles a single source image: decode, apply the op chain,
// downscale, encode.
func processImage(ctx context.Context, src Source, chain []ops.Op, cfg Config, registry *encoder.Registry) processResult {
	result := processResult{key: src.Key}

	img, err := codec.Load(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}
	if img.Empty() {
		result.err = fmt.Errorf("%s: %w", src.RelPath, errEmptyImage)
		return result
	}
	origW, origH := img.Width(), img.Height()

	img, err = ops.ApplyChain(img, chain)
	if err != nil {
		result.err = fmt.Errorf("process %s: %w", src.RelPath, err)
		return result
	}

	avg := computeAvgColor(img)
	peaks := tone.Peaks(img, img.Width())

	// Fill original info.
	result.asset = manifest.Asset{
		Original: manifest.OriginalInfo{
			Width:  origW,
			Height: origH,
			Format: src.Format,
			Size:   src.Size,
		},
		PixelHash:   hasher.RasterHash(img, 16),
		AspectRatio: float64(img.Width()) / float64(img.Height()),
		AvgColor:    &avg,
		Peaks:       &peaks,
	}

	widths := cfg.Profile.EffectiveWidths(img.Width())
	formats := registry.ResolveFormats(cfg.Profile.Formats)

	// Ensure output subdirectory exists.
	keyDir := filepath.Dir(src.Key)
	if err := os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755); err != nil {
		result.err = fmt.Errorf("mkdir %s: %w", keyDir, err)
		return result
	}

	// Generate variants.
	for _, w := range widths {
		if err := ctx.Err(); err != nil {
			result.err = err
			return result
		}

		h := profile.ScaledHeight(img.Width(), img.Height(), w)
		scaled := img
		if w != img.Width() || h != img.Height() {
			if scaled, err = transform.Downscale(img, w, h); err != nil {
				result.err = fmt.Errorf("downscale %s to %dx%d: %w", src.Key, w, h, err)
				return result
			}
		}

		for _, format := range formats {
			enc := registry.Get(format)
			if enc == nil {
				continue
			}

			data, err := enc.Encode(scaled, cfg.Profile.Quality)
			if err != nil {
				cfg.Logf("warn: encode %s@%dx%d as %s: %v", src.Key, w, h, format, err)
				continue
			}

			// Content hash for filename.
			contentHash := hasher.ContentHash(data, 16)

			// Build filename: key.w.h.hash.ext
			fileName := fmt.Sprintf("%s.%d.%d.%s.%s",
				filepath.Base(src.Key), w, h, contentHash[:8], enc.Extension())
			relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

			outPath := filepath.Join(cfg.OutputDir, relPath)
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				result.err = fmt.Errorf("write %s: %w", relPath, err)
				return result
			}

			result.asset.Variants = append(result.asset.Variants, manifest.Variant{
				Format: format,
				Width:  w,
				Height: h,
				Size:   int64(len(data)),
				Hash:   contentHash,
				Path:   relPath,
			})
		}
	}

	return result
}

// computeAvgColor calculates the average RGB color of an image.
func computeAvgColor(img *raster.Image) [3]uint8 {
	count := img.Width() * img.Height()
	if count == 0 {
		return [3]uint8{0, 0, 0}
	}
	var rSum, gSum, bSum int
	for y := 0; y < img.Height(); y++ {
		for _, p := range img.Row(y) {
			p = p.Clamp()
			rSum += p.R
			gSum += p.G
			bSum += p.B
		}
	}
	return [3]uint8{
		uint8(rSum / count),
		uint8(gSum / count),
		uint8(bSum / count),
	}
}
