package cmd

import (
	"fmt"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/compose"
	"github.com/AnyUserName/pixkit/internal/encoder"
	"github.com/AnyUserName/pixkit/internal/ops"
	"github.com/spf13/cobra"
)

var maskOps []string

var maskCmd = &cobra.Command{
	Use:   "mask <input> <mask> <output>",
	Short: "Apply operations only where a mask is white",
	Long: `Runs the --op chain over the input, then keeps the processed pixel
wherever the mask is white (255,255,255) and the original pixel everywhere else.`,
	Example: `  pixkit mask photo.png mask.png out.png --op blur --op sepia`,
	Args:    cobra.ExactArgs(3),
	RunE:    runMask,
}

func init() {
	maskCmd.Flags().StringArrayVar(&maskOps, "op", nil, "operation, repeatable, applied in order")
	rootCmd.AddCommand(maskCmd)
}

func runMask(_ *cobra.Command, args []string) error {
	chain, err := ops.ParseChain(maskOps)
	if err != nil {
		return err
	}

	original, err := codec.Load(args[0])
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	mask, err := codec.Load(args[1])
	if err != nil {
		return fmt.Errorf("load mask: %w", err)
	}

	filtered, err := ops.ApplyChain(original, chain)
	if err != nil {
		return err
	}
	out, err := compose.Mask(original, filtered, mask)
	if err != nil {
		return err
	}
	return saveImage(out, args[2], "", encoder.DefaultQuality)
}
