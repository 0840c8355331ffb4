// Package ops parses textual operation commands ("blur split 50",
// "levels-adjust 20 128 230") and runs them against the engine.
//
// Grammar: name [args...] [split <percent>]
package ops

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AnyUserName/pixkit/internal/filter"
	"github.com/AnyUserName/pixkit/internal/raster"
	"github.com/AnyUserName/pixkit/internal/tone"
	"github.com/AnyUserName/pixkit/internal/transform"
	"github.com/AnyUserName/pixkit/internal/wavelet"
)

// Op is one parsed operation.
type Op struct {
	Name  string
	Args  []float64
	Split int // percent of columns affected; 100 when not given
	text  string
}

// def describes an operation's arguments and how to run it.
type def struct {
	args     int
	splits   bool
	usage    string
	validate func(args []float64) error
	run      func(img *raster.Image, args []float64, split int) (*raster.Image, error)
}

var defs = map[string]def{}

func init() {
	for _, name := range filter.Names() {
		f, _ := filter.ByName(name)
		defs[name] = def{
			splits: true,
			usage:  name + " [split <pct>]",
			run: func(img *raster.Image, _ []float64, split int) (*raster.Image, error) {
				return filter.ApplySplit(f, img, split)
			},
		}
	}
	defs["horizontal-flip"] = def{
		usage: "horizontal-flip",
		run: func(img *raster.Image, _ []float64, _ int) (*raster.Image, error) {
			return transform.FlipHorizontal(img), nil
		},
	}
	defs["vertical-flip"] = def{
		usage: "vertical-flip",
		run: func(img *raster.Image, _ []float64, _ int) (*raster.Image, error) {
			return transform.FlipVertical(img), nil
		},
	}
	defs["brighten"] = def{
		args:     1,
		usage:    "brighten <amount>",
		validate: integers,
		run: func(img *raster.Image, a []float64, _ int) (*raster.Image, error) {
			return transform.Brighten(img, int(a[0])), nil
		},
	}
	defs["downscale"] = def{
		args:     2,
		usage:    "downscale <width> <height>",
		validate: integers,
		run: func(img *raster.Image, a []float64, _ int) (*raster.Image, error) {
			return transform.Downscale(img, int(a[0]), int(a[1]))
		},
	}
	defs["levels-adjust"] = def{
		args:   3,
		splits: true,
		usage:  "levels-adjust <black> <mid> <white> [split <pct>]",
		validate: func(a []float64) error {
			if err := integers(a); err != nil {
				return err
			}
			return levels(a).Validate()
		},
		run: func(img *raster.Image, a []float64, split int) (*raster.Image, error) {
			return tone.AdjustLevels(img, levels(a), split)
		},
	}
	defs["color-correct"] = def{
		splits: true,
		usage:  "color-correct [split <pct>]",
		run: func(img *raster.Image, _ []float64, split int) (*raster.Image, error) {
			return tone.ColorCorrect(img, split)
		},
	}
	defs["compress"] = def{
		args:  1,
		usage: "compress <pct>",
		validate: func(a []float64) error {
			if !(a[0] >= 0 && a[0] <= 100) {
				return fmt.Errorf("%w: compression %g%% not in [0,100]", raster.ErrInvalidParameter, a[0])
			}
			return nil
		},
		run: func(img *raster.Image, a []float64, _ int) (*raster.Image, error) {
			return wavelet.CompressPercent(img, a[0])
		},
	}
	defs["compress-threshold"] = def{
		args:  1,
		usage: "compress-threshold <magnitude>",
		validate: func(a []float64) error {
			if !(a[0] >= 0) {
				return fmt.Errorf("%w: threshold %g must be non-negative", raster.ErrInvalidParameter, a[0])
			}
			return nil
		},
		run: func(img *raster.Image, a []float64, _ int) (*raster.Image, error) {
			return wavelet.Compress(img, a[0])
		},
	}
}

func levels(a []float64) tone.Levels {
	return tone.Levels{Black: int(a[0]), Mid: int(a[1]), White: int(a[2])}
}

func integers(a []float64) error {
	for _, v := range a {
		if v != float64(int(v)) {
			return fmt.Errorf("%w: %g is not an integer", raster.ErrInvalidParameter, v)
		}
	}
	return nil
}

// Parse reads one operation.
func Parse(text string) (Op, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Op{}, fmt.Errorf("%w: empty operation", raster.ErrInvalidParameter)
	}
	name := strings.ToLower(fields[0])
	d, ok := defs[name]
	if !ok {
		return Op{}, fmt.Errorf("%w: unknown operation %q", raster.ErrInvalidParameter, fields[0])
	}

	op := Op{Name: name, Split: filter.FullSplit, text: strings.Join(fields, " ")}
	rest := fields[1:]
	if n := len(rest); n >= 2 && strings.EqualFold(rest[n-2], "split") {
		if !d.splits {
			return Op{}, fmt.Errorf("%w: %s does not support split", raster.ErrInvalidParameter, name)
		}
		pct, err := strconv.Atoi(rest[n-1])
		if err != nil {
			return Op{}, fmt.Errorf("%w: split percentage %q", raster.ErrInvalidParameter, rest[n-1])
		}
		if err := filter.CheckSplit(pct); err != nil {
			return Op{}, err
		}
		op.Split = pct
		rest = rest[:n-2]
	}

	if len(rest) != d.args {
		return Op{}, fmt.Errorf("%w: usage: %s", raster.ErrInvalidParameter, d.usage)
	}
	for _, s := range rest {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Op{}, fmt.Errorf("%w: argument %q is not a number (usage: %s)",
				raster.ErrInvalidParameter, s, d.usage)
		}
		op.Args = append(op.Args, v)
	}
	if d.validate != nil {
		if err := d.validate(op.Args); err != nil {
			return Op{}, err
		}
	}
	return op, nil
}

// ParseChain parses every entry of texts, stopping at the first error.
func ParseChain(texts []string) ([]Op, error) {
	chain := make([]Op, 0, len(texts))
	for i, t := range texts {
		op, err := Parse(t)
		if err != nil {
			return nil, fmt.Errorf("op %d (%q): %w", i+1, t, err)
		}
		chain = append(chain, op)
	}
	return chain, nil
}

// Apply runs the operation on img and returns the result.
func (op Op) Apply(img *raster.Image) (*raster.Image, error) {
	d, ok := defs[op.Name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown operation %q", raster.ErrInvalidParameter, op.Name)
	}
	if len(op.Args) != d.args {
		return nil, fmt.Errorf("%w: usage: %s", raster.ErrInvalidParameter, d.usage)
	}
	return d.run(img, op.Args, op.Split)
}

// String returns the normalised command text.
func (op Op) String() string {
	if op.text != "" {
		return op.text
	}
	return op.Name
}

// ApplyChain runs ops in order, feeding each result into the next.
func ApplyChain(img *raster.Image, chain []Op) (*raster.Image, error) {
	for _, op := range chain {
		var err error
		if img, err = op.Apply(img); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return img, nil
}

// Names lists every operation name in sorted order.
func Names() []string {
	names := make([]string, 0, len(defs))
	for n := range defs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SupportsSplit reports whether the named operation accepts a split suffix.
func SupportsSplit(name string) bool {
	return defs[strings.ToLower(name)].splits
}

// Usage returns the usage line of the named operation.
func Usage(name string) string {
	return defs[strings.ToLower(name)].usage
}
