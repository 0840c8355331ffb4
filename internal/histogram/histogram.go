// Package histogram counts channel frequencies and renders them as a
// 256×256 line chart.
package histogram

import "github.com/AnyUserName/pixkit/internal/raster"

// Bins is the number of histogram bins per channel.
const Bins = 256

// Histogram holds per-channel frequency counts.
type Histogram struct {
	Red   [Bins]int
	Green [Bins]int
	Blue  [Bins]int
}

// Compute counts every pixel of img.
func Compute(img *raster.Image) *Histogram {
	return ComputeColumns(img, img.Width())
}

// ComputeColumns counts the pixels in columns [0, limit) only.
// Channel values are clamped into range before counting.
func ComputeColumns(img *raster.Image, limit int) *Histogram {
	h := &Histogram{}
	limit = min(limit, img.Width())
	for y := 0; y < img.Height(); y++ {
		row := img.Row(y)
		for x := 0; x < limit; x++ {
			p := row[x].Clamp()
			h.Red[p.R]++
			h.Green[p.G]++
			h.Blue[p.B]++
		}
	}
	return h
}

// Peak returns the index in [lo, hi) holding the highest count.
// Ties keep the lowest index.
func Peak(bins *[Bins]int, lo, hi int) int {
	peak := lo
	for i := lo + 1; i < hi; i++ {
		if bins[i] > bins[peak] {
			peak = i
		}
	}
	return peak
}

// Max returns the largest count in bins.
func Max(bins *[Bins]int) int {
	m := 0
	for _, v := range bins {
		if v > m {
			m = v
		}
	}
	return m
}
