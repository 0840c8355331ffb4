package histogram

import "github.com/AnyUserName/pixkit/internal/raster"

// CanvasSize is the side length of a rendered histogram.
const CanvasSize = 256

// Render draws the red, green and blue histograms of img as connected
// lines on a white CanvasSize×CanvasSize image.  Each channel is scaled
// so its largest bin reaches the top edge.
func Render(img *raster.Image) *raster.Image {
	return RenderHistogram(Compute(img))
}

// RenderHistogram draws a precomputed histogram.
func RenderHistogram(h *Histogram) *raster.Image {
	canvas := raster.MustNew(CanvasSize, CanvasSize)
	canvas.Fill(raster.White)
	plot(canvas, &h.Red, raster.Red)
	plot(canvas, &h.Green, raster.Green)
	plot(canvas, &h.Blue, raster.Blue)
	return canvas
}

func plot(canvas *raster.Image, bins *[Bins]int, c raster.Pixel) {
	scale := 1.0
	if m := Max(bins); m > 0 {
		scale = float64(CanvasSize) / float64(m)
	}
	for i := 0; i < Bins-1; i++ {
		y1 := CanvasSize - int(float64(bins[i])*scale)
		y2 := CanvasSize - int(float64(bins[i+1])*scale)
		line(canvas, i, y1, i+1, y2, c)
	}
}

// line draws from (x1,y1) to (x2,y2) with Bresenham's algorithm,
// skipping points that fall off the canvas.
func line(canvas *raster.Image, x1, y1, x2, y2 int, c raster.Pixel) {
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy
	for {
		if x1 >= 0 && x1 < canvas.Width() && y1 >= 0 && y1 < canvas.Height() {
			canvas.Row(y1)[x1] = c
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
