// Package profile holds named batch presets: an operation chain plus the
// widths and formats every image is rendered to.
package profile

import "sort"

// Profile defines processing parameters for a batch run.
type Profile struct {
	Name    string
	Steps   []string // operation commands applied in order
	Widths  []int    // target widths for downscale
	Formats []string // output formats in priority order
	Quality int      // encoding quality 1-100
}

// Built-in profiles.
var profiles = map[string]Profile{
	"original": {
		Name:    "original",
		Widths:  []int{320, 640, 1280},
		Formats: []string{"png", "jpeg"},
		Quality: 90,
	},
	"grayscale": {
		Name:    "grayscale",
		Steps:   []string{"luma-component"},
		Widths:  []int{320, 640, 1280},
		Formats: []string{"png"},
		Quality: 90,
	},
	"vintage": {
		Name:    "vintage",
		Steps:   []string{"color-correct", "sepia", "levels-adjust 16 120 240"},
		Widths:  []int{640, 1280},
		Formats: []string{"jpeg"},
		Quality: 85,
	},
	"preview": {
		Name:    "preview",
		Steps:   []string{"blur"},
		Widths:  []int{160, 320},
		Formats: []string{"jpeg"},
		Quality: 70,
	},
}

// Get returns a profile by name. Falls back to original if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["original"]
	p.Name = name // preserve requested name
	return p
}

// Lookup reports whether name is a built-in profile.
func Lookup(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// Names lists the built-in profiles.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// EffectiveWidths returns the target widths that do not exceed
// originalWidth, deduplicated, in profile order.
func (p Profile) EffectiveWidths(originalWidth int) []int {
	seen := map[int]bool{}
	var result []int

	for _, w := range p.Widths {
		if w <= 0 || w > originalWidth {
			continue // don't upscale
		}
		if !seen[w] {
			seen[w] = true
			result = append(result, w)
		}
	}

	// Always include original width if not already present
	// (for cases where original is smaller than smallest target).
	if len(result) == 0 && originalWidth > 0 {
		result = append(result, originalWidth)
	}

	return result
}

// ScaledHeight keeps the aspect ratio of a width x height image when
// scaled to targetWidth. The result is at least 1.
func ScaledHeight(width, height, targetWidth int) int {
	if width <= 0 {
		return 0
	}
	h := (height*targetWidth + width/2) / width
	return max(h, 1)
}
