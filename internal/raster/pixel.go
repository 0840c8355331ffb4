package raster

import "fmt"

// Pixel is an RGB colour with integer channels.  Producers keep every
// channel in [0, 255]; the type itself does not enforce it.
type Pixel struct {
	R, G, B int
}

// Common colours.
var (
	Black = Pixel{0, 0, 0}
	White = Pixel{255, 255, 255}
	Red   = Pixel{255, 0, 0}
	Green = Pixel{0, 255, 0}
	Blue  = Pixel{0, 0, 255}
)

// Gray returns the pixel (v, v, v).
func Gray(v int) Pixel {
	return Pixel{v, v, v}
}

// Clamp returns p with every channel clamped to [0, 255].
func (p Pixel) Clamp() Pixel {
	return Pixel{ClampChannel(p.R), ClampChannel(p.G), ClampChannel(p.B)}
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.R, p.G, p.B)
}

// ClampChannel clamps v to [0, 255].
func ClampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
