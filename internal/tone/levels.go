// Package tone implements tonal remapping: three-point levels adjustment
// and histogram-peak colour correction.  Both honour the split-view
// policy of package filter.
package tone

import (
	"fmt"
	"math"

	"github.com/AnyUserName/pixkit/internal/filter"
	"github.com/AnyUserName/pixkit/internal/raster"
)

// Levels is a black / mid / white point triple.
type Levels struct {
	Black, Mid, White int
}

// Validate checks 0 <= Black < Mid < White <= 255.
func (lv Levels) Validate() error {
	if lv.Black < 0 || lv.Black >= lv.Mid || lv.Mid >= lv.White || lv.White > 255 {
		return fmt.Errorf("%w: levels %d/%d/%d must satisfy 0 <= b < m < w <= 255",
			raster.ErrInvalidParameter, lv.Black, lv.Mid, lv.White)
	}
	return nil
}

// Map remaps one channel value.
func (lv Levels) Map(v int) int {
	switch {
	case v <= lv.Black:
		return 0
	case v >= lv.White:
		return 255
	case v <= lv.Mid:
		return int(math.Round(127 * float64(v-lv.Black) / float64(lv.Mid-lv.Black)))
	default:
		return int(math.Round(127 + 128*float64(v-lv.Mid)/float64(lv.White-lv.Mid)))
	}
}

// AdjustLevels remaps every channel of the left pct percent of src through
// lv and copies the remaining columns unchanged.
func AdjustLevels(src *raster.Image, lv Levels, pct int) (*raster.Image, error) {
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	if err := filter.CheckSplit(pct); err != nil {
		return nil, err
	}

	var lut [256]int
	for v := range lut {
		lut[v] = lv.Map(v)
	}

	dst := src.Clone()
	limit := filter.SplitPoint(src.Width(), pct)
	for y := 0; y < dst.Height(); y++ {
		row := dst.Row(y)
		for x := 0; x < limit; x++ {
			p := row[x].Clamp()
			row[x] = raster.Pixel{R: lut[p.R], G: lut[p.G], B: lut[p.B]}
		}
	}
	return dst, nil
}
