package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/AnyUserName/pixkit/internal/hasher"
)

// New creates an empty manifest with defaults.
func New(profileName string, steps []string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     profileName,
		Steps:       append([]string{}, steps...),
		BasePath:    "./",
		Assets:      make(map[string]Asset),
	}
}

// ComputeStats recalculates aggregate statistics from assets.
// Failed is carried over since it has no asset entry.
func (m *Manifest) ComputeStats() {
	s := Stats{Failed: m.Stats.Failed}
	s.TotalAssets = len(m.Assets)
	for _, a := range m.Assets {
		s.TotalInputBytes += a.Original.Size
		s.TotalVariants += len(a.Variants)
		for _, v := range a.Variants {
			s.TotalOutputBytes += v.Size
		}
	}
	m.Stats = s
}

// Keys returns asset keys in sorted order.
func (m *Manifest) Keys() []string {
	keys := make([]string, 0, len(m.Assets))
	for k := range m.Assets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a manifest and checks its schema version.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if m.Version != SupportedManifestVersion {
		return nil, fmt.Errorf("unsupported manifest version %d (want %d)", m.Version, SupportedManifestVersion)
	}
	if m.Assets == nil {
		m.Assets = make(map[string]Asset)
	}
	return &m, nil
}

// Validate checks that every variant listed in m exists under baseDir with
// the recorded size and content hash. It returns one error per problem.
func (m *Manifest) Validate(baseDir string) []error {
	var errs []error
	for _, key := range m.Keys() {
		a := m.Assets[key]
		if len(a.Variants) == 0 {
			errs = append(errs, fmt.Errorf("%s: no variants", key))
		}
		if a.AspectRatio <= 0 {
			errs = append(errs, fmt.Errorf("%s: invalid aspect ratio %g", key, a.AspectRatio))
		}
		for _, v := range a.Variants {
			if err := checkVariant(filepath.Join(baseDir, m.BasePath, filepath.FromSlash(v.Path)), v); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
		}
	}
	return errs
}

func checkVariant(path string, v Variant) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("missing %s", v.Path)
	}
	if err != nil {
		return err
	}
	if int64(len(data)) != v.Size {
		return fmt.Errorf("%s: size %d, manifest says %d", v.Path, len(data), v.Size)
	}
	if got := hasher.ContentHash(data, len(v.Hash)); got != v.Hash {
		return fmt.Errorf("%s: hash %s, manifest says %s", v.Path, got, v.Hash)
	}
	return nil
}
