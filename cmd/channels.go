package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/compose"
	"github.com/AnyUserName/pixkit/internal/encoder"
	"github.com/AnyUserName/pixkit/internal/raster"
	"github.com/spf13/cobra"
)

var channelFormat string

var rgbSplitCmd = &cobra.Command{
	Use:   "rgb-split <input> <output_prefix>",
	Short: "Write the red, green and blue channels as three greyscale images",
	Long: `Writes <output_prefix>-red.<ext>, <output_prefix>-green.<ext> and
<output_prefix>-blue.<ext>. Each is a greyscale image of one channel.`,
	Args: cobra.ExactArgs(2),
	RunE: runRGBSplit,
}

var rgbCombineCmd = &cobra.Command{
	Use:   "rgb-combine <red> <green> <blue> <output>",
	Short: "Build one image from the red, green and blue channels of three",
	Args:  cobra.ExactArgs(4),
	RunE:  runRGBCombine,
}

func init() {
	rgbSplitCmd.Flags().StringVarP(&channelFormat, "format", "f", "ppm", "output format")
	rootCmd.AddCommand(rgbSplitCmd, rgbCombineCmd)
}

func runRGBSplit(_ *cobra.Command, args []string) error {
	img, err := codec.Load(args[0])
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	enc := encoder.NewRegistry().Get(channelFormat)
	if enc == nil {
		return fmt.Errorf("unsupported format %q", channelFormat)
	}

	prefix := strings.TrimSuffix(args[1], filepath.Ext(args[1]))
	r, g, b := compose.SplitRGB(img)
	for _, part := range []struct {
		name string
		img  *raster.Image
	}{{"red", r}, {"green", g}, {"blue", b}} {
		path := fmt.Sprintf("%s-%s.%s", prefix, part.name, enc.Extension())
		if err := saveImage(part.img, path, enc.Format(), encoder.DefaultQuality); err != nil {
			return err
		}
	}
	return nil
}

func runRGBCombine(_ *cobra.Command, args []string) error {
	var parts [3]*raster.Image
	for i := range parts {
		img, err := codec.Load(args[i])
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		parts[i] = img
	}

	img, err := compose.CombineRGB(parts[0], parts[1], parts[2])
	if err != nil {
		return err
	}
	return saveImage(img, args[3], "", encoder.DefaultQuality)
}
