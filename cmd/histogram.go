package cmd

import (
	"fmt"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/encoder"
	"github.com/AnyUserName/pixkit/internal/histogram"
	"github.com/AnyUserName/pixkit/internal/tone"
	"github.com/spf13/cobra"
)

var histogramCmd = &cobra.Command{
	Use:   "histogram <input> <output>",
	Short: "Render the RGB histogram of an image as a 256x256 plot",
	Args:  cobra.ExactArgs(2),
	RunE:  runHistogram,
}

func init() {
	rootCmd.AddCommand(histogramCmd)
}

func runHistogram(_ *cobra.Command, args []string) error {
	img, err := codec.Load(args[0])
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	peaks := tone.Peaks(img, img.Width())
	logVerbose("peaks: r=%d g=%d b=%d", peaks[0], peaks[1], peaks[2])

	return saveImage(histogram.Render(img), args[1], "", encoder.DefaultQuality)
}
