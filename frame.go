package visionx

// Resize scales any image variant to the given dimensions using the grid's
// nearest-neighbor resampler. The result is a new image of the same variant;
// the source is untouched.
func Resize(img Image, width, height int) Image {
	switch v := img.(type) {
	case *GrayscaleImage:
		return &GrayscaleImage{Data: v.Data.Resize(width, height)}
	case *GrayscaleAlphaImage:
		return &GrayscaleAlphaImage{Data: v.Data.Resize(width, height)}
	case *RgbImage:
		return &RgbImage{Data: v.Data.Resize(width, height)}
	case *RgbaImage:
		return &RgbaImage{Data: v.Data.Resize(width, height)}
	case *Grayscale16Image:
		return &Grayscale16Image{Data: v.Data.Resize(width, height)}
	case *GrayscaleAlpha16Image:
		return &GrayscaleAlpha16Image{Data: v.Data.Resize(width, height)}
	case *Rgb16Image:
		return &Rgb16Image{Data: v.Data.Resize(width, height)}
	case *Rgba16Image:
		return &Rgba16Image{Data: v.Data.Resize(width, height)}
	case *HsvImage:
		return &HsvImage{Data: v.Data.Resize(width, height)}
	}
	return nil
}

// Crop extracts the sub-rectangle with inclusive top-left corner (x0, y0)
// and exclusive bottom-right corner (x1, y1) from any image variant. An
// invalid rectangle fails with *pixel.RegionError and no image is produced.
func Crop(img Image, x0, y0, x1, y1 int) (Image, error) {
	switch v := img.(type) {
	case *GrayscaleImage:
		g, err := v.Data.Crop(x0, y0, x1, y1)
		if err != nil {
			return nil, err
		}
		return &GrayscaleImage{Data: g}, nil
	case *GrayscaleAlphaImage:
		g, err := v.Data.Crop(x0, y0, x1, y1)
		if err != nil {
			return nil, err
		}
		return &GrayscaleAlphaImage{Data: g}, nil
	case *RgbImage:
		g, err := v.Data.Crop(x0, y0, x1, y1)
		if err != nil {
			return nil, err
		}
		return &RgbImage{Data: g}, nil
	case *RgbaImage:
		g, err := v.Data.Crop(x0, y0, x1, y1)
		if err != nil {
			return nil, err
		}
		return &RgbaImage{Data: g}, nil
	case *Grayscale16Image:
		g, err := v.Data.Crop(x0, y0, x1, y1)
		if err != nil {
			return nil, err
		}
		return &Grayscale16Image{Data: g}, nil
	case *GrayscaleAlpha16Image:
		g, err := v.Data.Crop(x0, y0, x1, y1)
		if err != nil {
			return nil, err
		}
		return &GrayscaleAlpha16Image{Data: g}, nil
	case *Rgb16Image:
		g, err := v.Data.Crop(x0, y0, x1, y1)
		if err != nil {
			return nil, err
		}
		return &Rgb16Image{Data: g}, nil
	case *Rgba16Image:
		g, err := v.Data.Crop(x0, y0, x1, y1)
		if err != nil {
			return nil, err
		}
		return &Rgba16Image{Data: g}, nil
	case *HsvImage:
		g, err := v.Data.Crop(x0, y0, x1, y1)
		if err != nil {
			return nil, err
		}
		return &HsvImage{Data: g}, nil
	}
	return nil, &InvalidColorTypeError{From: img.ColorType(), To: "crop"}
}
