// Package visionx implements an in-memory, typed pixel-grid image model and
// the colorspace conversions defined over it.
//
// An image is one of nine closed variants: grayscale, grayscale+alpha, RGB,
// and RGBA at 8-bit or 16-bit depth, plus a floating-point HSV variant. Each
// variant wraps a pixel.Grid specialized to its sample type and channel
// count, so per-format operations stay statically checked.
//
// # Ownership
//
// Conversions never share or mutate pixel data across variants. Every
// ToGrayscale, ToRGB, or ToHSV call allocates and returns an independent
// grid, including the identity cases. Transforms are pure and synchronous;
// calling them concurrently on distinct images requires no locking.
//
// # Conversion Matrix
//
//   - ToGrayscale accepts every variant and always succeeds.
//   - ToRGB accepts RGB, RGBA, RGB16, RGBA16, and HSV sources; grayscale
//     sources fail with *InvalidColorTypeError.
//   - ToHSV accepts RGB, RGBA, RGB16, RGBA16, and HSV sources; grayscale
//     sources fail with *InvalidColorTypeError.
//
// 16-bit samples are reduced to 8-bit with a single rounding formula,
// round(s/65535*255), wherever a conversion narrows the depth.
//
// # Encoding Boundary
//
// The HSV variant has no valid file encoding. The imageio package rejects it
// at write time; everything else flattens to a row-major sample stream for
// the encoder.
package visionx
