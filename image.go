package visionx

import "github.com/noobsiecoder/vision-x/pixel"

// ColorType identifies the colorspace and depth of an image variant.
type ColorType int

const (
	ColorTypeGrayscale ColorType = iota
	ColorTypeGrayscaleAlpha
	ColorTypeRgb
	ColorTypeRgba
	ColorTypeGrayscale16
	ColorTypeGrayscaleAlpha16
	ColorTypeRgb16
	ColorTypeRgba16
	ColorTypeHsv
)

// String returns the canonical lower-case name of the color type.
func (c ColorType) String() string {
	switch c {
	case ColorTypeGrayscale:
		return "grayscale"
	case ColorTypeGrayscaleAlpha:
		return "grayscale_alpha"
	case ColorTypeRgb:
		return "rgb"
	case ColorTypeRgba:
		return "rgba"
	case ColorTypeGrayscale16:
		return "grayscale16"
	case ColorTypeGrayscaleAlpha16:
		return "grayscale_alpha16"
	case ColorTypeRgb16:
		return "rgb16"
	case ColorTypeRgba16:
		return "rgba16"
	case ColorTypeHsv:
		return "hsv"
	}
	return "unknown"
}

// Image is the closed union over the supported image formats. Only the nine
// variant types in this package implement it.
type Image interface {
	ColorType() ColorType

	sealedImage()
}

// GrayscaleImage holds single-channel 8-bit luma pixels.
type GrayscaleImage struct {
	Data *pixel.Grid[uint8]
}

// GrayscaleAlphaImage holds 8-bit luma plus alpha pixels.
type GrayscaleAlphaImage struct {
	Data *pixel.Grid[uint8]
}

// RgbImage holds 8-bit RGB pixels.
type RgbImage struct {
	Data *pixel.Grid[uint8]
}

// RgbaImage holds 8-bit RGBA pixels.
type RgbaImage struct {
	Data *pixel.Grid[uint8]
}

// Grayscale16Image holds single-channel 16-bit luma pixels.
type Grayscale16Image struct {
	Data *pixel.Grid[uint16]
}

// GrayscaleAlpha16Image holds 16-bit luma plus alpha pixels.
type GrayscaleAlpha16Image struct {
	Data *pixel.Grid[uint16]
}

// Rgb16Image holds 16-bit RGB pixels.
type Rgb16Image struct {
	Data *pixel.Grid[uint16]
}

// Rgba16Image holds 16-bit RGBA pixels.
type Rgba16Image struct {
	Data *pixel.Grid[uint16]
}

// HsvImage holds floating-point HSV pixels: hue in degrees [0, 360),
// saturation and value in [0, 1]. It cannot be written to a file.
type HsvImage struct {
	Data *pixel.Grid[float32]
}

func (*GrayscaleImage) ColorType() ColorType        { return ColorTypeGrayscale }
func (*GrayscaleAlphaImage) ColorType() ColorType   { return ColorTypeGrayscaleAlpha }
func (*RgbImage) ColorType() ColorType              { return ColorTypeRgb }
func (*RgbaImage) ColorType() ColorType             { return ColorTypeRgba }
func (*Grayscale16Image) ColorType() ColorType      { return ColorTypeGrayscale16 }
func (*GrayscaleAlpha16Image) ColorType() ColorType { return ColorTypeGrayscaleAlpha16 }
func (*Rgb16Image) ColorType() ColorType            { return ColorTypeRgb16 }
func (*Rgba16Image) ColorType() ColorType           { return ColorTypeRgba16 }
func (*HsvImage) ColorType() ColorType              { return ColorTypeHsv }

// Dimensions returns the width and height of any image variant.
func Dimensions(img Image) (width, height int) {
	switch v := img.(type) {
	case *GrayscaleImage:
		return v.Data.Width(), v.Data.Height()
	case *GrayscaleAlphaImage:
		return v.Data.Width(), v.Data.Height()
	case *RgbImage:
		return v.Data.Width(), v.Data.Height()
	case *RgbaImage:
		return v.Data.Width(), v.Data.Height()
	case *Grayscale16Image:
		return v.Data.Width(), v.Data.Height()
	case *GrayscaleAlpha16Image:
		return v.Data.Width(), v.Data.Height()
	case *Rgb16Image:
		return v.Data.Width(), v.Data.Height()
	case *Rgba16Image:
		return v.Data.Width(), v.Data.Height()
	case *HsvImage:
		return v.Data.Width(), v.Data.Height()
	}
	return 0, 0
}

func (*GrayscaleImage) sealedImage()        {}
func (*GrayscaleAlphaImage) sealedImage()   {}
func (*RgbImage) sealedImage()              {}
func (*RgbaImage) sealedImage()             {}
func (*Grayscale16Image) sealedImage()      {}
func (*GrayscaleAlpha16Image) sealedImage() {}
func (*Rgb16Image) sealedImage()            {}
func (*Rgba16Image) sealedImage()           {}
func (*HsvImage) sealedImage()              {}
