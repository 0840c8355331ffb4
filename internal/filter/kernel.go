package filter

import (
	"fmt"

	"github.com/AnyUserName/pixkit/internal/raster"
)

// Kernel is an odd-sized square matrix of convolution weights.
// Weights are indexed [row][col]; the centre sits at [Radius][Radius].
type Kernel struct {
	name    string
	weights [][]float64
}

// NewKernel validates weights and returns a convolution filter.
func NewKernel(name string, weights [][]float64) (*Kernel, error) {
	n := len(weights)
	if n == 0 || n%2 == 0 {
		return nil, fmt.Errorf("%w: kernel size %d must be odd", raster.ErrInvalidParameter, n)
	}
	w := make([][]float64, n)
	for i, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("%w: kernel row %d has %d weights, want %d",
				raster.ErrInvalidParameter, i, len(row), n)
		}
		w[i] = append([]float64(nil), row...)
	}
	return &Kernel{name: name, weights: w}, nil
}

func mustKernel(name string, weights [][]float64) *Kernel {
	k, err := NewKernel(name, weights)
	if err != nil {
		panic(err)
	}
	return k
}

// Blur is a 3×3 normalised Gaussian blur.
var Blur = mustKernel("blur", [][]float64{
	{1 / 16.0, 1 / 8.0, 1 / 16.0},
	{1 / 8.0, 1 / 4.0, 1 / 8.0},
	{1 / 16.0, 1 / 8.0, 1 / 16.0},
})

// Sharpen is a 5×5 sharpening kernel: negative outer ring, positive inner
// ring, unit centre.
var Sharpen = mustKernel("sharpen", [][]float64{
	{-1 / 8.0, -1 / 8.0, -1 / 8.0, -1 / 8.0, -1 / 8.0},
	{-1 / 8.0, 1 / 4.0, 1 / 4.0, 1 / 4.0, -1 / 8.0},
	{-1 / 8.0, 1 / 4.0, 1.0, 1 / 4.0, -1 / 8.0},
	{-1 / 8.0, 1 / 4.0, 1 / 4.0, 1 / 4.0, -1 / 8.0},
	{-1 / 8.0, -1 / 8.0, -1 / 8.0, -1 / 8.0, -1 / 8.0},
})

// Name implements Filter.
func (k *Kernel) Name() string { return k.name }

// Size returns the kernel's side length.
func (k *Kernel) Size() int { return len(k.weights) }

// Radius returns (Size-1)/2.
func (k *Kernel) Radius() int { return (len(k.weights) - 1) / 2 }

// Weight returns the weight at row i, column j.
func (k *Kernel) Weight(i, j int) float64 { return k.weights[i][j] }

// Render implements Filter.  Neighbours outside the image contribute
// nothing; sums are truncated toward zero and clamped per channel.
func (k *Kernel) Render(dst, src *raster.Image, limit int) {
	w, h := src.Width(), src.Height()
	r := k.Radius()
	for y := 0; y < h; y++ {
		out := dst.Row(y)
		for x := 0; x < limit; x++ {
			var red, green, blue float64
			for i := -r; i <= r; i++ {
				sy := y + i
				if sy < 0 || sy >= h {
					continue
				}
				row := src.Row(sy)
				kw := k.weights[i+r]
				for j := -r; j <= r; j++ {
					sx := x + j
					if sx < 0 || sx >= w {
						continue
					}
					p := row[sx]
					wt := kw[j+r]
					red += float64(p.R) * wt
					green += float64(p.G) * wt
					blue += float64(p.B) * wt
				}
			}
			out[x] = raster.Pixel{
				R: raster.ClampChannel(int(red)),
				G: raster.ClampChannel(int(green)),
				B: raster.ClampChannel(int(blue)),
			}
		}
	}
}
