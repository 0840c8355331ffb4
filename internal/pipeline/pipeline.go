// Package pipeline runs an operation chain over every image in a directory
// and writes content-addressed variants plus a manifest.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/AnyUserName/pixkit/internal/encoder"
	"github.com/AnyUserName/pixkit/internal/manifest"
	"github.com/AnyUserName/pixkit/internal/ops"
	"github.com/AnyUserName/pixkit/internal/profile"
)

// Config holds all parameters for a batch pipeline run.
type Config struct {
	InputDir  string
	OutputDir string
	Profile   profile.Profile
	Workers   int

	// Logf receives progress and warnings. Nil discards them.
	Logf func(format string, args ...any)
}

// Pipeline orchestrates image processing.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logf == nil {
		cfg.Logf = func(string, ...any) {}
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

// Run executes the full pipeline and returns the manifest. Individual
// image failures are logged and counted; Run fails only when every image
// fails or ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context) (*manifest.Manifest, error) {
	p.cfg.Logf("%s", p.registry.String())

	chain, err := ops.ParseChain(p.cfg.Profile.Steps)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", p.cfg.Profile.Name, err)
	}

	// Step 1: Scan for images.
	sources, err := ScanImages(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	p.cfg.Logf("found %d images", len(sources))

	// Step 2: Process images in parallel.
	results := make([]processResult, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.cfg.Logf("processing: %s", src.Key)

			results[i] = processImage(gctx, src, chain, p.cfg, p.registry)

			if results[i].err == nil {
				p.cfg.Logf("done: %s (%d variants)", src.Key, len(results[i].asset.Variants))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 3: Collect results into manifest.
	m := manifest.New(p.cfg.Profile.Name, p.cfg.Profile.Steps)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Assets[r.key] = r.asset
	}

	// Report errors but don't fail the entire run for partial failures.
	if len(errs) > 0 {
		for _, e := range errs {
			p.cfg.Logf("error: %v", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to process: %w", len(errs), errs[0])
		}
		p.cfg.Logf("warning: %d of %d images had errors", len(errs), len(sources))
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers: p.cfg.Workers,
		Quality: p.cfg.Profile.Quality,
	}
	m.Stats.Failed = len(errs)
	m.ComputeStats()
	return m, nil
}
