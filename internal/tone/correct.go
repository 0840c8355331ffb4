package tone

import (
	"github.com/AnyUserName/pixkit/internal/filter"
	"github.com/AnyUserName/pixkit/internal/histogram"
	"github.com/AnyUserName/pixkit/internal/raster"
)

// Bounds of the bins searched for a meaningful peak; the extremes are
// ignored so clipped shadows and highlights do not dominate.
const (
	peakLow  = 10
	peakHigh = 245
)

// Offsets is the additive shift applied to each channel.
type Offsets struct {
	Red, Green, Blue int
}

// Peaks returns the meaningful red, green and blue histogram peaks of the
// columns [0, limit) of img.
func Peaks(img *raster.Image, limit int) [3]int {
	h := histogram.ComputeColumns(img, limit)
	return [3]int{
		histogram.Peak(&h.Red, peakLow, peakHigh),
		histogram.Peak(&h.Green, peakLow, peakHigh),
		histogram.Peak(&h.Blue, peakLow, peakHigh),
	}
}

// PeakOffsets measures the columns [0, limit) of img and returns the shift
// that moves each channel's meaningful peak onto the average peak.
func PeakOffsets(img *raster.Image, limit int) Offsets {
	p := Peaks(img, limit)
	r, g, b := p[0], p[1], p[2]
	avg := (r + g + b) / 3
	return Offsets{Red: avg - r, Green: avg - g, Blue: avg - b}
}

// ColorCorrect aligns the histogram peaks of the three channels within the
// left pct percent of src.  Columns past the split are copied unchanged.
func ColorCorrect(src *raster.Image, pct int) (*raster.Image, error) {
	if err := filter.CheckSplit(pct); err != nil {
		return nil, err
	}
	limit := filter.SplitPoint(src.Width(), pct)
	off := PeakOffsets(src, limit)

	dst := src.Clone()
	for y := 0; y < dst.Height(); y++ {
		row := dst.Row(y)
		for x := 0; x < limit; x++ {
			p := row[x]
			row[x] = raster.Pixel{R: p.R + off.Red, G: p.G + off.Green, B: p.B + off.Blue}.Clamp()
		}
	}
	return dst, nil
}
