package wavelet

import (
	"fmt"
	"math"
	"sort"

	"github.com/AnyUserName/pixkit/internal/raster"
)

var channels = [3]Channel{ChannelRed, ChannelGreen, ChannelBlue}

// Decompose pads every channel of img to the next power-of-two square and
// returns the forward-transformed coefficient matrices (red, green, blue).
func Decompose(img *raster.Image) [3]*Matrix {
	size := NextPowerOfTwo(max(img.Width(), img.Height()))
	var mats [3]*Matrix
	for i, c := range channels {
		mats[i] = Pad(img, c, size)
		mats[i].Forward2D()
	}
	return mats
}

// Reconstruct inverts the coefficient matrices, crops them to
// width×height and clamps and rounds every value into a pixel.
// The matrices are consumed.
func Reconstruct(mats [3]*Matrix, width, height int) (*raster.Image, error) {
	img, err := raster.New(width, height)
	if err != nil {
		return nil, err
	}
	for _, m := range mats {
		m.Inverse2D()
	}
	for y := 0; y < height; y++ {
		row := img.Row(y)
		for x := range row {
			row[x] = raster.Pixel{
				R: toChannel(mats[0].At(y, x)),
				G: toChannel(mats[1].At(y, x)),
				B: toChannel(mats[2].At(y, x)),
			}
		}
	}
	return img, nil
}

func toChannel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(255, v))))
}

// Compress zeroes every Haar coefficient with magnitude below threshold
// and returns the reconstructed image.  A threshold of 0 reproduces img up
// to rounding; one above every coefficient's magnitude yields black.
func Compress(img *raster.Image, threshold float64) (*raster.Image, error) {
	if threshold < 0 || math.IsNaN(threshold) {
		return nil, fmt.Errorf("%w: threshold %g", raster.ErrInvalidParameter, threshold)
	}
	mats := Decompose(img)
	for _, m := range mats {
		m.Threshold(threshold)
	}
	return Reconstruct(mats, img.Width(), img.Height())
}

// CompressPercent discards the pct percent smallest-magnitude coefficients
// across all three channels.  pct 100 discards everything.
func CompressPercent(img *raster.Image, pct float64) (*raster.Image, error) {
	if pct < 0 || pct > 100 || math.IsNaN(pct) {
		return nil, fmt.Errorf("%w: compression %g%% not in [0,100]", raster.ErrInvalidParameter, pct)
	}
	mats := Decompose(img)
	t := ThresholdForPercent(mats, pct)
	for _, m := range mats {
		m.Threshold(t)
	}
	return Reconstruct(mats, img.Width(), img.Height())
}

// ThresholdForPercent returns the magnitude below which pct percent of the
// coefficients in mats fall.  0 yields 0 and 100 yields +Inf.
func ThresholdForPercent(mats [3]*Matrix, pct float64) float64 {
	if pct <= 0 {
		return 0
	}
	if pct >= 100 {
		return math.Inf(1)
	}
	var mags []float64
	for _, m := range mats {
		for _, v := range m.Data {
			mags = append(mags, math.Abs(v))
		}
	}
	sort.Float64s(mags)
	idx := int(pct / 100 * float64(len(mags)))
	return mags[min(idx, len(mags)-1)]
}
