package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/AnyUserName/pixkit/internal/encoder"
	"github.com/AnyUserName/pixkit/internal/manifest"
	"github.com/AnyUserName/pixkit/internal/pipeline"
	"github.com/AnyUserName/pixkit/internal/profile"
	"github.com/spf13/cobra"
)

var (
	batchOutDir  string
	batchProfile string
	batchWorkers int
	batchWidths  []int
	batchFormats []string
	batchQuality int
	batchOps     []string
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir>",
	Short: "Run an operation chain over a directory and write variants + manifest",
	Long: `Scans input directory for images (ppm, grid, png, jpg, jpeg, gif, bmp,
tiff, webp), applies the profile's operation chain (or --op steps), writes
downscaled variants in each requested format and a manifest file.

Output filenames are content-addressed: <key>.<w>.<h>.<hash>.ext`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "./pixkit_out", "output directory")
	batchCmd.Flags().StringVarP(&batchProfile, "profile", "p", "original",
		"processing profile ("+strings.Join(profile.Names(), ", ")+")")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	batchCmd.Flags().IntSliceVar(&batchWidths, "widths", nil, "custom widths (overrides profile)")
	batchCmd.Flags().StringSliceVar(&batchFormats, "formats", nil, "output formats (overrides profile)")
	batchCmd.Flags().IntVarP(&batchQuality, "quality", "q", 0, "quality 1-100 (0 = profile default)")
	batchCmd.Flags().StringArrayVar(&batchOps, "op", nil, `operation step, repeatable (overrides profile), e.g. --op "blur split 50"`)
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	// Resolve absolute paths.
	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(batchOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	// Load profile.
	prof := profile.Get(batchProfile)
	if _, ok := profile.Lookup(batchProfile); !ok {
		logVerbose("unknown profile %q, using original defaults", batchProfile)
	}
	if batchWidths != nil {
		prof.Widths = batchWidths
	}
	if batchFormats != nil {
		prof.Formats = batchFormats
	}
	if batchQuality > 0 {
		prof.Quality = batchQuality
	}
	if batchOps != nil {
		prof.Steps = batchOps
	}

	logVerbose("input:   %s", absInput)
	logVerbose("output:  %s", absOutput)
	logVerbose("profile: %s (steps=%q, widths=%v, quality=%d)", prof.Name, prof.Steps, prof.Widths, prof.Quality)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := pipeline.New(pipeline.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Profile:   prof,
		Workers:   batchWorkers,
		Logf:      logVerbose,
	})

	m, err := p.Run(ctx)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	// Write manifest.
	manifestPath := filepath.Join(absOutput, manifest.FileName)
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBatchReport(m, time.Since(start))
	return nil
}

func printBatchReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("  pixkit batch complete")
	fmt.Println()

	stats := m.Stats
	ratio := float64(0)
	if stats.TotalInputBytes > 0 {
		ratio = float64(stats.TotalOutputBytes) / float64(stats.TotalInputBytes) * 100
	}

	fmt.Printf("  Assets:      %d\n", stats.TotalAssets)
	fmt.Printf("  Variants:    %d\n", stats.TotalVariants)
	fmt.Printf("  Input size:  %s\n", formatBytes(stats.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(stats.TotalOutputBytes))
	fmt.Printf("  Ratio:       %.1f%% of original\n", ratio)
	if stats.Failed > 0 {
		fmt.Printf("  Failed:      %d images (see --verbose)\n", stats.Failed)
	}
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:     %d\n", m.BuildInfo.Workers)
	}
	if len(m.Steps) > 0 {
		fmt.Printf("  Steps:       %s\n", strings.Join(m.Steps, " | "))
	}
	fmt.Println()

	// Top 10 heaviest assets.
	if len(m.Assets) > 0 {
		type assetSize struct {
			key        string
			inputSize  int64
			outputSize int64
		}
		var items []assetSize
		for key, a := range m.Assets {
			var outSum int64
			for _, v := range a.Variants {
				outSum += v.Size
			}
			items = append(items, assetSize{key, a.Original.Size, outSum})
		}
		sort.Slice(items, func(i, j int) bool {
			return items[i].inputSize > items[j].inputSize
		})
		n := min(len(items), 10)
		fmt.Printf("  Top %d heaviest (original -> variants):\n", n)
		for _, it := range items[:n] {
			fmt.Printf("    %-40s %8s -> %8s\n",
				truncKey(it.key, 40),
				formatBytes(it.inputSize),
				formatBytes(it.outputSize),
			)
		}
		fmt.Println()
	}

	fmt.Printf("  Formats:     %s\n", strings.Join(detectOutputFormats(m), ", "))
	fmt.Println()

	data, _ := json.Marshal(m)
	fmt.Printf("  Manifest:    %s (%s)\n", manifest.FileName, formatBytes(int64(len(data))))
	fmt.Println()
}

// detectOutputFormats lists the formats present in m in encoder priority order.
func detectOutputFormats(m *manifest.Manifest) []string {
	set := map[string]bool{}
	for _, a := range m.Assets {
		for _, v := range a.Variants {
			set[v.Format] = true
		}
	}
	var out []string
	for _, f := range encoder.NewRegistry().Available() {
		if set[f] {
			out = append(out, f)
		}
	}
	return out
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
