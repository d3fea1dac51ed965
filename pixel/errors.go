package pixel

import "fmt"

// IndexOutOfBoundError reports an accessor call with a coordinate outside
// the grid's declared dimensions. It carries the attempted coordinate and
// the actual size for diagnostics.
type IndexOutOfBoundError struct {
	X, Y          int
	Width, Height int
}

func (e *IndexOutOfBoundError) Error() string {
	return fmt.Sprintf("pixel: coordinate (%d, %d) out of bounds for size (%d, %d)",
		e.X, e.Y, e.Width, e.Height)
}

// RegionError reports a crop rectangle that violates the grid's bounds or
// the point ordering constraint. Both corner points and the source
// dimensions are retained.
type RegionError struct {
	X0, Y0        int
	X1, Y1        int
	Width, Height int
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("pixel: crop region (%d, %d)-(%d, %d) invalid for size (%d, %d)",
		e.X0, e.Y0, e.X1, e.Y1, e.Width, e.Height)
}

// ChannelCountError reports a pixel tuple whose length disagrees with the
// grid's channel count.
type ChannelCountError struct {
	Got, Want int
}

func (e *ChannelCountError) Error() string {
	return fmt.Sprintf("pixel: tuple has %d samples, grid holds %d channels", e.Got, e.Want)
}
