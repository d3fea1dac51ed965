package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp" // Register BMP format decoder

	visionx "github.com/noobsiecoder/vision-x"
	"github.com/noobsiecoder/vision-x/pixel"
)

// Read decodes the image file at path into the variant matching its pixel
// layout:
//
//   - 8-bit grayscale  -> *visionx.GrayscaleImage
//   - 16-bit grayscale -> *visionx.Grayscale16Image
//   - 8-bit RGB (YCbCr, CMYK) -> *visionx.RgbImage
//   - 8-bit RGBA (incl. palette) -> *visionx.RgbaImage
//   - 16-bit RGBA -> *visionx.Rgba16Image
//
// Missing files and undecodable content fail with wrapped I/O errors; an
// unrecognized extension fails with *InvalidExtensionError, and a decoded
// layout with no corresponding variant fails with *InvalidImageDepthError.
func Read(path string) (visionx.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("imageio: locate %s: %w", path, err)
	}
	if _, err := FormatFromPath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	switch img := src.(type) {
	case *image.Gray:
		return &visionx.GrayscaleImage{Data: grayGrid(img)}, nil
	case *image.Gray16:
		return &visionx.Grayscale16Image{Data: gray16Grid(img)}, nil
	case *image.NRGBA:
		return &visionx.RgbaImage{Data: nrgbaGrid(img)}, nil
	case *image.RGBA, *image.Paletted:
		return &visionx.RgbaImage{Data: rgbaGridFrom(src)}, nil
	case *image.NRGBA64:
		return &visionx.Rgba16Image{Data: nrgba64Grid(img)}, nil
	case *image.RGBA64:
		return &visionx.Rgba16Image{Data: rgba64GridFrom(src)}, nil
	case *image.YCbCr, *image.CMYK:
		return &visionx.RgbImage{Data: rgbGridFrom(src)}, nil
	}
	return nil, &InvalidImageDepthError{Path: path, Model: fmt.Sprintf("%T", src)}
}

func grayGrid(img *image.Gray) *pixel.Grid[uint8] {
	b := img.Bounds()
	g := pixel.NewGrid[uint8](b.Dx(), b.Dy(), 1)
	for y := 0; y < b.Dy(); y++ {
		row := g.Rows()[y]
		copy(row, img.Pix[y*img.Stride:y*img.Stride+b.Dx()])
	}
	return g
}

func gray16Grid(img *image.Gray16) *pixel.Grid[uint16] {
	b := img.Bounds()
	g := pixel.NewGrid[uint16](b.Dx(), b.Dy(), 1)
	for y := 0; y < b.Dy(); y++ {
		row := g.Rows()[y]
		for x := 0; x < b.Dx(); x++ {
			off := y*img.Stride + x*2
			row[x] = uint16(img.Pix[off])<<8 | uint16(img.Pix[off+1])
		}
	}
	return g
}

func nrgbaGrid(img *image.NRGBA) *pixel.Grid[uint8] {
	b := img.Bounds()
	g := pixel.NewGrid[uint8](b.Dx(), b.Dy(), 4)
	for y := 0; y < b.Dy(); y++ {
		copy(g.Rows()[y], img.Pix[y*img.Stride:y*img.Stride+b.Dx()*4])
	}
	return g
}

// rgbaGridFrom un-premultiplies through the color model, pixel by pixel.
func rgbaGridFrom(src image.Image) *pixel.Grid[uint8] {
	b := src.Bounds()
	g := pixel.NewGrid[uint8](b.Dx(), b.Dy(), 4)
	for y := 0; y < b.Dy(); y++ {
		row := g.Rows()[y]
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			off := x * 4
			row[off], row[off+1], row[off+2], row[off+3] = c.R, c.G, c.B, c.A
		}
	}
	return g
}

func nrgba64Grid(img *image.NRGBA64) *pixel.Grid[uint16] {
	b := img.Bounds()
	g := pixel.NewGrid[uint16](b.Dx(), b.Dy(), 4)
	for y := 0; y < b.Dy(); y++ {
		row := g.Rows()[y]
		for x := 0; x < b.Dx()*4; x++ {
			off := y*img.Stride + x*2
			row[x] = uint16(img.Pix[off])<<8 | uint16(img.Pix[off+1])
		}
	}
	return g
}

func rgba64GridFrom(src image.Image) *pixel.Grid[uint16] {
	b := src.Bounds()
	g := pixel.NewGrid[uint16](b.Dx(), b.Dy(), 4)
	for y := 0; y < b.Dy(); y++ {
		row := g.Rows()[y]
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBA64Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			off := x * 4
			row[off], row[off+1], row[off+2], row[off+3] = c.R, c.G, c.B, c.A
		}
	}
	return g
}

func rgbGridFrom(src image.Image) *pixel.Grid[uint8] {
	b := src.Bounds()
	g := pixel.NewGrid[uint8](b.Dx(), b.Dy(), 3)
	for y := 0; y < b.Dy(); y++ {
		row := g.Rows()[y]
		for x := 0; x < b.Dx(); x++ {
			r, gr, bl, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			off := x * 3
			row[off], row[off+1], row[off+2] = uint8(r>>8), uint8(gr>>8), uint8(bl>>8)
		}
	}
	return g
}
