package visionx

import (
	"math"

	"github.com/noobsiecoder/vision-x/pixel"
)

// downcast8Bit reduces a 16-bit sample to its nearest 8-bit equivalent.
// This is the single canonical depth reduction: round(s/65535*255). Every
// 16-to-8 narrowing in the package goes through it.
func downcast8Bit(s uint16) uint8 {
	return uint8(math.Round(float64(s) / 65535 * 255))
}

// rgbToGray projects an 8-bit RGB triple to luma with the ITU-R BT.601
// weighted sum: round(0.299*R + 0.587*G + 0.114*B).
func rgbToGray(r, g, b uint8) uint8 {
	return uint8(math.Round(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)))
}

// rgbToHSV converts an 8-bit RGB triple to hue in degrees [0, 360),
// saturation in [0, 1], and value in [0, 1].
func rgbToHSV(r, g, b uint8) (h, s, v float32) {
	rf := float32(r) / 255
	gf := float32(g) / 255
	bf := float32(b) / 255

	cmax := max(rf, gf, bf)
	cmin := min(rf, gf, bf)
	delta := cmax - cmin

	switch {
	case delta == 0:
		h = 0
	case cmax == rf:
		h = float32(math.Mod(float64((gf-bf)/delta), 6))
		if h < 0 {
			h += 6
		}
	case cmax == gf:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}
	h *= 60

	if cmax != 0 {
		s = delta / cmax
	}
	return h, s, cmax
}

// hsvToRGB converts hue in degrees, saturation, and value back to an 8-bit
// RGB triple via the standard six-sector table. Hue outside [0, 360) selects
// no sector and maps to black rather than failing; callers that need strict
// validation must range-check the hue themselves.
func hsvToRGB(h, s, v float32) (r, g, b uint8) {
	chroma := s * v
	hp := h / 60
	x := chroma * (1 - float32(math.Abs(math.Mod(float64(hp), 2)-1)))
	m := v - chroma

	var rp, gp, bp float32
	switch {
	case h >= 0 && h < 60:
		rp, gp, bp = chroma, x, 0
	case h >= 60 && h < 120:
		rp, gp, bp = x, chroma, 0
	case h >= 120 && h < 180:
		rp, gp, bp = 0, chroma, x
	case h >= 180 && h < 240:
		rp, gp, bp = 0, x, chroma
	case h >= 240 && h < 300:
		rp, gp, bp = x, 0, chroma
	case h >= 300 && h < 360:
		rp, gp, bp = chroma, 0, x
	default:
		rp, gp, bp, m = 0, 0, 0, 0
	}

	r = uint8(math.Round(float64((rp + m) * 255)))
	g = uint8(math.Round(float64((gp + m) * 255)))
	b = uint8(math.Round(float64((bp + m) * 255)))
	return r, g, b
}

// mapGrid applies fn element-wise, writing each destination tuple in place.
// The destination grid has the same dimensions as the source and channels
// samples per pixel.
func mapGrid[S, D pixel.Sample](src *pixel.Grid[S], channels int, fn func(src []S, dst []D)) *pixel.Grid[D] {
	out := pixel.NewGrid[D](src.Width(), src.Height(), channels)
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			px, ok := src.Get(x, y)
			if !ok {
				continue
			}
			dst, _ := out.Get(x, y)
			fn(px, dst)
		}
	}
	return out
}

// ToGrayscale converts any image variant to single-channel 8-bit luma. The
// conversion is total: every source format has a defined projection.
//
// Alpha channels are dropped, 16-bit samples are narrowed with downcast8Bit,
// and RGB sources use the BT.601 weighted sum. For HSV sources the H, S, and
// V components are treated as if they were prescaled 16-bit channel values
// and pushed through the same rescale-then-luma path; HSV is not actually
// luma-separable this way, but the behavior is kept for compatibility with
// the historical conversion.
func ToGrayscale(img Image) *GrayscaleImage {
	switch v := img.(type) {
	case *GrayscaleImage:
		return &GrayscaleImage{Data: v.Data.Clone()}
	case *GrayscaleAlphaImage:
		return &GrayscaleImage{Data: mapGrid(v.Data, 1, func(src, dst []uint8) {
			dst[0] = src[0]
		})}
	case *Grayscale16Image:
		return &GrayscaleImage{Data: mapGrid(v.Data, 1, func(src []uint16, dst []uint8) {
			dst[0] = downcast8Bit(src[0])
		})}
	case *GrayscaleAlpha16Image:
		return &GrayscaleImage{Data: mapGrid(v.Data, 1, func(src []uint16, dst []uint8) {
			dst[0] = downcast8Bit(src[0])
		})}
	case *RgbImage:
		return &GrayscaleImage{Data: mapGrid(v.Data, 1, func(src, dst []uint8) {
			dst[0] = rgbToGray(src[0], src[1], src[2])
		})}
	case *RgbaImage:
		return &GrayscaleImage{Data: mapGrid(v.Data, 1, func(src, dst []uint8) {
			dst[0] = rgbToGray(src[0], src[1], src[2])
		})}
	case *Rgb16Image:
		return &GrayscaleImage{Data: mapGrid(v.Data, 1, func(src []uint16, dst []uint8) {
			dst[0] = rgbToGray(downcast8Bit(src[0]), downcast8Bit(src[1]), downcast8Bit(src[2]))
		})}
	case *Rgba16Image:
		return &GrayscaleImage{Data: mapGrid(v.Data, 1, func(src []uint16, dst []uint8) {
			dst[0] = rgbToGray(downcast8Bit(src[0]), downcast8Bit(src[1]), downcast8Bit(src[2]))
		})}
	case *HsvImage:
		return &GrayscaleImage{Data: mapGrid(v.Data, 1, func(src []float32, dst []uint8) {
			dst[0] = uint8(math.Round(0.299*float64(src[0])/65535*255 +
				0.587*float64(src[1])/65535*255 +
				0.114*float64(src[2])/65535*255))
		})}
	}
	return nil
}

// ToRGB converts an image to 8-bit RGB. Valid sources are RGB (identity
// copy), RGBA (alpha dropped), RGB16 and RGBA16 (per-channel narrowing), and
// HSV. Grayscale sources fail with *InvalidColorTypeError.
func ToRGB(img Image) (*RgbImage, error) {
	switch v := img.(type) {
	case *RgbImage:
		return &RgbImage{Data: v.Data.Clone()}, nil
	case *RgbaImage:
		return &RgbImage{Data: mapGrid(v.Data, 3, func(src, dst []uint8) {
			dst[0], dst[1], dst[2] = src[0], src[1], src[2]
		})}, nil
	case *Rgb16Image:
		return &RgbImage{Data: mapGrid(v.Data, 3, func(src []uint16, dst []uint8) {
			dst[0] = downcast8Bit(src[0])
			dst[1] = downcast8Bit(src[1])
			dst[2] = downcast8Bit(src[2])
		})}, nil
	case *Rgba16Image:
		return &RgbImage{Data: mapGrid(v.Data, 3, func(src []uint16, dst []uint8) {
			dst[0] = downcast8Bit(src[0])
			dst[1] = downcast8Bit(src[1])
			dst[2] = downcast8Bit(src[2])
		})}, nil
	case *HsvImage:
		return &RgbImage{Data: mapGrid(v.Data, 3, func(src []float32, dst []uint8) {
			dst[0], dst[1], dst[2] = hsvToRGB(src[0], src[1], src[2])
		})}, nil
	}
	return nil, &InvalidColorTypeError{From: img.ColorType(), To: "rgb"}
}

// ToHSV converts an image to floating-point HSV. Valid sources are RGB,
// RGBA (alpha dropped), RGB16 and RGBA16 (narrowed first), and HSV (identity
// copy). Grayscale sources fail with *InvalidColorTypeError.
func ToHSV(img Image) (*HsvImage, error) {
	switch v := img.(type) {
	case *RgbImage:
		return &HsvImage{Data: mapGrid(v.Data, 3, func(src []uint8, dst []float32) {
			dst[0], dst[1], dst[2] = rgbToHSV(src[0], src[1], src[2])
		})}, nil
	case *RgbaImage:
		return &HsvImage{Data: mapGrid(v.Data, 3, func(src []uint8, dst []float32) {
			dst[0], dst[1], dst[2] = rgbToHSV(src[0], src[1], src[2])
		})}, nil
	case *Rgb16Image:
		return &HsvImage{Data: mapGrid(v.Data, 3, func(src []uint16, dst []float32) {
			dst[0], dst[1], dst[2] = rgbToHSV(downcast8Bit(src[0]), downcast8Bit(src[1]), downcast8Bit(src[2]))
		})}, nil
	case *Rgba16Image:
		return &HsvImage{Data: mapGrid(v.Data, 3, func(src []uint16, dst []float32) {
			dst[0], dst[1], dst[2] = rgbToHSV(downcast8Bit(src[0]), downcast8Bit(src[1]), downcast8Bit(src[2]))
		})}, nil
	case *HsvImage:
		return &HsvImage{Data: v.Data.Clone()}, nil
	}
	return nil, &InvalidColorTypeError{From: img.ColorType(), To: "hsv"}
}
