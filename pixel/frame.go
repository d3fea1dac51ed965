package pixel

// Resize returns a copy of the grid scaled to the given dimensions using
// nearest-neighbor sampling. Each destination pixel takes the value of the
// source pixel at (x*srcWidth/width, y*srcHeight/height) with integer floor
// division; destination cells whose mapping misses the source stay zeroed.
//
// Upscaling produces blocky repetition and downscaling drops samples without
// averaging. That is the documented behavior of this resampler, not a bug.
// Non-positive target dimensions yield an empty grid.
func (g *Grid[T]) Resize(width, height int) *Grid[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	resized := NewGrid[T](width, height, g.channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			oldX := x * g.width / width
			oldY := y * g.height / height

			if px, ok := g.Get(oldX, oldY); ok {
				copy(resized.rows[y][x*g.channels:], px)
			}
		}
	}

	return resized
}

// Crop returns a deep copy of the sub-rectangle with inclusive top-left
// corner (x0, y0) and exclusive bottom-right corner (x1, y1). The crop is
// all-or-nothing: unless 0 <= x0 < x1 <= width and 0 <= y0 < y1 <= height,
// it fails with *RegionError and no partial or clamped result is produced.
func (g *Grid[T]) Crop(x0, y0, x1, y1 int) (*Grid[T], error) {
	if x0 < 0 || y0 < 0 || x0 >= x1 || y0 >= y1 || x1 > g.width || y1 > g.height {
		return nil, &RegionError{
			X0: x0, Y0: y0,
			X1: x1, Y1: y1,
			Width: g.width, Height: g.height,
		}
	}

	width := x1 - x0
	height := y1 - y0

	cropped := NewGrid[T](width, height, g.channels)
	for y := 0; y < height; y++ {
		src := g.rows[y0+y][x0*g.channels : x1*g.channels]
		copy(cropped.rows[y], src)
	}

	return cropped, nil
}
