package imageio

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	visionx "github.com/noobsiecoder/vision-x"
)

// Write encodes img to the file format named by path's extension. The pixel
// grid is flattened to its row-major sample stream and rebuilt as the
// closest standard-library image type before encoding:
//
//   - Grayscale   -> 8-bit gray
//   - Grayscale16 -> 16-bit gray
//   - Rgb/Rgba    -> 8-bit RGBA (RGB gains an opaque alpha channel)
//   - Rgb16/Rgba16 -> 16-bit RGBA
//   - GrayscaleAlpha variants expand to RGBA; Go has no luma+alpha image
//
// HSV images are rejected with *visionx.InvalidColorTypeError. A flattened
// stream shorter or longer than width*height*channels fails with
// *InsufficientBufferError before any file is touched.
func Write(path string, img visionx.Image) error {
	if _, err := FormatFromPath(path); err != nil {
		return err
	}

	var dst image.Image
	switch v := img.(type) {
	case *visionx.GrayscaleImage:
		flat, w, h := v.Data.Flatten(), v.Data.Width(), v.Data.Height()
		if len(flat) != w*h {
			return &InsufficientBufferError{Path: path, Got: len(flat), Want: w * h}
		}
		dst = &image.Gray{Pix: flat, Stride: w, Rect: image.Rect(0, 0, w, h)}

	case *visionx.GrayscaleAlphaImage:
		flat, w, h := v.Data.Flatten(), v.Data.Width(), v.Data.Height()
		if len(flat) != w*h*2 {
			return &InsufficientBufferError{Path: path, Got: len(flat), Want: w * h * 2}
		}
		out := image.NewNRGBA(image.Rect(0, 0, w, h))
		for i := 0; i < w*h; i++ {
			luma, alpha := flat[i*2], flat[i*2+1]
			out.Pix[i*4], out.Pix[i*4+1], out.Pix[i*4+2], out.Pix[i*4+3] = luma, luma, luma, alpha
		}
		dst = out

	case *visionx.RgbImage:
		flat, w, h := v.Data.Flatten(), v.Data.Width(), v.Data.Height()
		if len(flat) != w*h*3 {
			return &InsufficientBufferError{Path: path, Got: len(flat), Want: w * h * 3}
		}
		out := image.NewNRGBA(image.Rect(0, 0, w, h))
		for i := 0; i < w*h; i++ {
			out.Pix[i*4], out.Pix[i*4+1], out.Pix[i*4+2] = flat[i*3], flat[i*3+1], flat[i*3+2]
			out.Pix[i*4+3] = 0xff
		}
		dst = out

	case *visionx.RgbaImage:
		flat, w, h := v.Data.Flatten(), v.Data.Width(), v.Data.Height()
		if len(flat) != w*h*4 {
			return &InsufficientBufferError{Path: path, Got: len(flat), Want: w * h * 4}
		}
		dst = &image.NRGBA{Pix: flat, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}

	case *visionx.Grayscale16Image:
		flat, w, h := v.Data.Flatten(), v.Data.Width(), v.Data.Height()
		if len(flat) != w*h {
			return &InsufficientBufferError{Path: path, Got: len(flat), Want: w * h}
		}
		out := image.NewGray16(image.Rect(0, 0, w, h))
		packUint16(out.Pix, flat)
		dst = out

	case *visionx.GrayscaleAlpha16Image:
		flat, w, h := v.Data.Flatten(), v.Data.Width(), v.Data.Height()
		if len(flat) != w*h*2 {
			return &InsufficientBufferError{Path: path, Got: len(flat), Want: w * h * 2}
		}
		expanded := make([]uint16, w*h*4)
		for i := 0; i < w*h; i++ {
			luma, alpha := flat[i*2], flat[i*2+1]
			expanded[i*4], expanded[i*4+1], expanded[i*4+2], expanded[i*4+3] = luma, luma, luma, alpha
		}
		out := image.NewNRGBA64(image.Rect(0, 0, w, h))
		packUint16(out.Pix, expanded)
		dst = out

	case *visionx.Rgb16Image:
		flat, w, h := v.Data.Flatten(), v.Data.Width(), v.Data.Height()
		if len(flat) != w*h*3 {
			return &InsufficientBufferError{Path: path, Got: len(flat), Want: w * h * 3}
		}
		expanded := make([]uint16, w*h*4)
		for i := 0; i < w*h; i++ {
			expanded[i*4], expanded[i*4+1], expanded[i*4+2] = flat[i*3], flat[i*3+1], flat[i*3+2]
			expanded[i*4+3] = 0xffff
		}
		out := image.NewNRGBA64(image.Rect(0, 0, w, h))
		packUint16(out.Pix, expanded)
		dst = out

	case *visionx.Rgba16Image:
		flat, w, h := v.Data.Flatten(), v.Data.Width(), v.Data.Height()
		if len(flat) != w*h*4 {
			return &InsufficientBufferError{Path: path, Got: len(flat), Want: w * h * 4}
		}
		out := image.NewNRGBA64(image.Rect(0, 0, w, h))
		packUint16(out.Pix, flat)
		dst = out

	case *visionx.HsvImage:
		return &visionx.InvalidColorTypeError{From: v.ColorType(), To: "file encoding"}
	}

	if err := imaging.Save(dst, path); err != nil {
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}
	return nil
}

// packUint16 writes samples big-endian into pix, the byte layout the
// standard library's 16-bit image types use.
func packUint16(pix []uint8, samples []uint16) {
	for i, s := range samples {
		pix[i*2] = uint8(s >> 8)
		pix[i*2+1] = uint8(s)
	}
}
