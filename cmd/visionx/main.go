package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	visionx "github.com/noobsiecoder/vision-x"
	"github.com/noobsiecoder/vision-x/imageio"
)

// Version information - set by ldflags during build
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "visionx",
	Short:   "Pixel-grid image transforms",
	Long:    "visionx converts, resizes, and crops images through the vision-x pixel-grid core.",
	Version: Version,
}

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Print the dimensions and color type of an image",
	Args:  inputFileArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := imageio.Read(args[0])
		if err != nil {
			return err
		}

		w, h := visionx.Dimensions(img)
		cmd.Printf("Dimensions: %dx%d\n", w, h)
		cmd.Printf("Color type: %s\n", img.ColorType())
		return nil
	},
}

var grayCmd = &cobra.Command{
	Use:   "gray <input> <output>",
	Short: "Convert an image to 8-bit grayscale",
	Args:  inputFileArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := imageio.Read(args[0])
		if err != nil {
			return err
		}
		return imageio.Write(args[1], visionx.ToGrayscale(img))
	},
}

var (
	resizeWidth  int
	resizeHeight int
)

var resizeCmd = &cobra.Command{
	Use:   "resize <input> <output>",
	Short: "Resize an image with nearest-neighbor sampling",
	Args:  inputFileArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if resizeWidth <= 0 || resizeHeight <= 0 {
			return fmt.Errorf("target dimensions must be positive, got %dx%d", resizeWidth, resizeHeight)
		}

		img, err := imageio.Read(args[0])
		if err != nil {
			return err
		}
		return imageio.Write(args[1], visionx.Resize(img, resizeWidth, resizeHeight))
	},
}

var cropX0, cropY0, cropX1, cropY1 int

var cropCmd = &cobra.Command{
	Use:   "crop <input> <output>",
	Short: "Extract a rectangular region from an image",
	Long:  "Extract the rectangle with inclusive top-left corner (x0, y0) and exclusive bottom-right corner (x1, y1).",
	Args:  inputFileArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := imageio.Read(args[0])
		if err != nil {
			return err
		}

		cropped, err := visionx.Crop(img, cropX0, cropY0, cropX1, cropY1)
		if err != nil {
			return err
		}
		return imageio.Write(args[1], cropped)
	},
}

// inputFileArgs validates the argument count and that the first argument
// names an existing file.
func inputFileArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return err
		}
		if _, err := os.Stat(args[0]); err != nil {
			return fmt.Errorf("could not open input file %s: %w", args[0], err)
		}
		return nil
	}
}

func init() {
	resizeCmd.Flags().IntVarP(&resizeWidth, "width", "w", 0, "target width in pixels")
	resizeCmd.Flags().IntVarP(&resizeHeight, "height", "H", 0, "target height in pixels")

	cropCmd.Flags().IntVar(&cropX0, "x0", 0, "left edge (inclusive)")
	cropCmd.Flags().IntVar(&cropY0, "y0", 0, "top edge (inclusive)")
	cropCmd.Flags().IntVar(&cropX1, "x1", 0, "right edge (exclusive)")
	cropCmd.Flags().IntVar(&cropY1, "y1", 0, "bottom edge (exclusive)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(grayCmd)
	rootCmd.AddCommand(resizeCmd)
	rootCmd.AddCommand(cropCmd)
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
