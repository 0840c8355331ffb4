// Package wavelet implements lossy image compression with the orthonormal
// Haar wavelet.
//
// Each channel is padded to a power-of-two square, transformed with a
// separable multi-level 2D Haar transform, thresholded, transformed back
// and cropped.  Compression always reconstructs in the same call; there is
// no persisted coefficient stream.
package wavelet

import "math"

var invSqrt2 = 1 / math.Sqrt2

// Forward1D returns the full multi-level Haar transform of data, whose
// length must be a power of two.  data is not modified.
//
// At each level the first L values are replaced by L/2 pairwise averages
// followed by L/2 pairwise differences, both scaled by 1/√2; L halves
// until it reaches 1.
func Forward1D(data []float64) []float64 {
	out := append([]float64(nil), data...)
	tmp := make([]float64, len(data))
	for n := len(out); n > 1; n /= 2 {
		half := n / 2
		for i := 0; i < half; i++ {
			a, b := out[2*i], out[2*i+1]
			tmp[i] = (a + b) * invSqrt2
			tmp[half+i] = (a - b) * invSqrt2
		}
		copy(out[:n], tmp[:n])
	}
	return out
}

// Inverse1D undoes Forward1D.  data is not modified.
func Inverse1D(data []float64) []float64 {
	out := append([]float64(nil), data...)
	tmp := make([]float64, len(data))
	for n := 2; n <= len(out); n *= 2 {
		half := n / 2
		for i := 0; i < half; i++ {
			avg, diff := out[i], out[half+i]
			tmp[2*i] = (avg + diff) * invSqrt2
			tmp[2*i+1] = (avg - diff) * invSqrt2
		}
		copy(out[:n], tmp[:n])
	}
	return out
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
