// Package codec reads and writes rasters: the plain-text grid and PPM (P3)
// formats directly, everything else through imaging.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/AnyUserName/pixkit/internal/raster"
)

// ErrMalformed reports a text raster that cannot be parsed.
var ErrMalformed = errors.New("codec: malformed raster")

// EncodeGrid writes img as "width height" followed by one line of
// "r g b" triples per row.
func EncodeGrid(w io.Writer, img *raster.Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", img.Width(), img.Height())
	if err := writeTriples(bw, img); err != nil {
		return err
	}
	return bw.Flush()
}

// checkHeader rejects header sizes that cannot describe a raster, before
// anything is allocated.
func checkHeader(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", raster.ErrInvalidDimensions, w, h)
	}
	if w > raster.MaxPixels/h {
		return fmt.Errorf("%w: header %dx%d exceeds %d pixels", ErrMalformed, w, h, raster.MaxPixels)
	}
	return nil
}

// DecodeGrid parses the format written by EncodeGrid.  Any whitespace may
// separate fields; channels must lie in [0, 255].
func DecodeGrid(r io.Reader) (*raster.Image, error) {
	t := newTokenizer(r)
	w, err := t.int("width")
	if err != nil {
		return nil, err
	}
	h, err := t.int("height")
	if err != nil {
		return nil, err
	}
	if err := checkHeader(w, h); err != nil {
		return nil, err
	}
	img, err := raster.New(w, h)
	if err != nil {
		return nil, err
	}
	if err := readTriples(t, img, 255); err != nil {
		return nil, err
	}
	return img, nil
}

func writeTriples(bw *bufio.Writer, img *raster.Image) error {
	line := make([]byte, 0, img.Width()*12)
	for y := 0; y < img.Height(); y++ {
		line = line[:0]
		for x, p := range img.Row(y) {
			if x > 0 {
				line = append(line, ' ')
			}
			c := p.Clamp()
			line = strconv.AppendInt(line, int64(c.R), 10)
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(c.G), 10)
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(c.B), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return nil
}

func readTriples(t *tokenizer, img *raster.Image, maxVal int) error {
	for y := 0; y < img.Height(); y++ {
		row := img.Row(y)
		for x := range row {
			var ch [3]int
			for i, name := range [3]string{"red", "green", "blue"} {
				v, err := t.int(name)
				if err != nil {
					return fmt.Errorf("pixel (%d,%d): %w", x, y, err)
				}
				if v < 0 || v > maxVal {
					return fmt.Errorf("%w: pixel (%d,%d) %s %d not in [0,%d]",
						ErrMalformed, x, y, name, v, maxVal)
				}
				ch[i] = v
			}
			row[x] = raster.Pixel{R: ch[0], G: ch[1], B: ch[2]}
		}
	}
	return nil
}
