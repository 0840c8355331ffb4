package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/AnyUserName/pixkit/internal/raster"
)

const ppmMagic = "P3"

// EncodePPM writes img as a plain PPM with a maximum value of 255.
func EncodePPM(w io.Writer, img *raster.Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n255\n", ppmMagic, img.Width(), img.Height())
	if err := writeTriples(bw, img); err != nil {
		return err
	}
	return bw.Flush()
}

// DecodePPM parses a plain (P3) PPM.  Samples are rescaled to [0, 255]
// when the file's maximum value is not 255.
func DecodePPM(r io.Reader) (*raster.Image, error) {
	t := newTokenizer(r)
	magic, err := t.next()
	if err != nil || magic != ppmMagic {
		return nil, fmt.Errorf("%w: not a P3 PPM", ErrMalformed)
	}
	w, err := t.int("width")
	if err != nil {
		return nil, err
	}
	h, err := t.int("height")
	if err != nil {
		return nil, err
	}
	maxVal, err := t.int("maxval")
	if err != nil {
		return nil, err
	}
	if maxVal <= 0 || maxVal > 65535 {
		return nil, fmt.Errorf("%w: maxval %d", ErrMalformed, maxVal)
	}
	if err := checkHeader(w, h); err != nil {
		return nil, err
	}
	img, err := raster.New(w, h)
	if err != nil {
		return nil, err
	}
	if err := readTriples(t, img, maxVal); err != nil {
		return nil, err
	}
	if maxVal != 255 {
		rescale(img, maxVal)
	}
	return img, nil
}

func rescale(img *raster.Image, maxVal int) {
	scale := func(v int) int { return (v*255 + maxVal/2) / maxVal }
	for y := 0; y < img.Height(); y++ {
		row := img.Row(y)
		for x, p := range row {
			row[x] = raster.Pixel{R: scale(p.R), G: scale(p.G), B: scale(p.B)}
		}
	}
}
