// Package filter implements per-pixel and convolution filters together
// with the split-view policy they share: the filter's effect covers the
// left part of the image and the remaining columns are copied verbatim.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AnyUserName/pixkit/internal/raster"
)

// FullSplit applies a filter across the whole width.
const FullSplit = 100

// Filter renders a filtered version of src into dst.
type Filter interface {
	// Name returns the command name of the filter (e.g. "blur").
	Name() string

	// Render writes the filtered pixel for every column x < limit of every
	// row into dst.  dst and src have the same size; columns at or past
	// limit must be left alone.
	Render(dst, src *raster.Image, limit int)
}

// SplitPoint returns the first column left untouched by a split of pct
// percent: floor(width * pct / 100).
func SplitPoint(width, pct int) int {
	return width * pct / 100
}

// CheckSplit rejects split percentages outside [0, 100].
func CheckSplit(pct int) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("%w: split percentage %d not in [0,100]", raster.ErrInvalidParameter, pct)
	}
	return nil
}

// Apply runs f over the whole of src and returns a new image.
func Apply(f Filter, src *raster.Image) *raster.Image {
	return render(f, src, src.Width())
}

// ApplySplit runs f over the left pct percent of src's columns and copies
// the rest unchanged.
func ApplySplit(f Filter, src *raster.Image, pct int) (*raster.Image, error) {
	if err := CheckSplit(pct); err != nil {
		return nil, err
	}
	return render(f, src, SplitPoint(src.Width(), pct)), nil
}

func render(f Filter, src *raster.Image, limit int) *raster.Image {
	dst := src.Clone()
	if limit > 0 {
		f.Render(dst, src, limit)
	}
	return dst
}

// ─── registry ────────────────────────────────────────────────

var registry = map[string]Filter{}

func register(f Filter) {
	registry[f.Name()] = f
}

func init() {
	register(Blur)
	register(Sharpen)
	register(RedComponent)
	register(GreenComponent)
	register(BlueComponent)
	register(ValueComponent)
	register(IntensityComponent)
	register(LumaComponent)
	register(Sepia)
}

// ByName returns the registered filter called name.
func ByName(name string) (Filter, bool) {
	f, ok := registry[strings.ToLower(name)]
	return f, ok
}

// Names lists registered filter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
