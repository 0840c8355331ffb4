package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/pixkit/internal/raster"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp"
)

// loadable maps every extension Load understands to its format name.
var loadable = map[string]string{
	".ppm":  "ppm",
	".grid": "grid",
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
	".webp": "webp",
}

// Loadable reports whether Load can read path, judged by its extension,
// and returns the format name.
func Loadable(path string) (format string, ok bool) {
	format, ok = loadable[strings.ToLower(filepath.Ext(path))]
	return format, ok
}

// Load reads the raster stored at path.  ".ppm" files use DecodePPM,
// ".grid" files DecodeGrid, and every other extension is decoded by
// imaging (png, jpeg, gif, bmp, tiff, webp).
func Load(path string) (*raster.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return loadText(path, DecodePPM)
	case ".grid":
		return loadText(path, DecodeGrid)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return raster.FromImage(img)
}

func loadText(path string, decode func(io.Reader) (*raster.Image, error)) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
