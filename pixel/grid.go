package pixel

// Sample is the set of scalar types a Grid can hold: 8-bit and 16-bit
// unsigned channel values, or 32-bit floats for the HSV colorspace.
type Sample interface {
	~uint8 | ~uint16 | ~float32
}

// Grid is a dense 2D array of fixed-size pixel tuples. The channel count is
// fixed at construction; every pixel holds exactly that many samples of T.
//
// A Grid is not safe for concurrent mutation. Transforms never mutate their
// receiver and always return a freshly allocated Grid, so concurrent use on
// distinct grids needs no locking.
type Grid[T Sample] struct {
	width    int
	height   int
	channels int
	rows     [][]T
}

// NewGrid allocates a zero-filled grid of the given dimensions.
func NewGrid[T Sample](width, height, channels int) *Grid[T] {
	rows := make([][]T, height)
	for y := range rows {
		rows[y] = make([]T, width*channels)
	}

	return &Grid[T]{
		width:    width,
		height:   height,
		channels: channels,
		rows:     rows,
	}
}

// GridFromRows wraps a pre-built row slice without copying. The rows are not
// validated against the declared dimensions; keeping them consistent is the
// caller's responsibility.
func GridFromRows[T Sample](width, height, channels int, rows [][]T) *Grid[T] {
	return &Grid[T]{
		width:    width,
		height:   height,
		channels: channels,
		rows:     rows,
	}
}

// Width returns the image width in pixels.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the image height in pixels.
func (g *Grid[T]) Height() int { return g.height }

// Channels returns the number of samples per pixel.
func (g *Grid[T]) Channels() int { return g.channels }

// Rows exposes the backing row slice. Mutating it mutates the grid.
func (g *Grid[T]) Rows() [][]T { return g.rows }

// SetWidth replaces the declared width. The backing rows are untouched; see
// the package documentation on consistency.
func (g *Grid[T]) SetWidth(width int) { g.width = width }

// SetHeight replaces the declared height. The backing rows are untouched.
func (g *Grid[T]) SetHeight(height int) { g.height = height }

// SetRows replaces the backing rows. The declared dimensions are untouched.
func (g *Grid[T]) SetRows(rows [][]T) { g.rows = rows }

// Get returns the channel tuple at column x, row y, or nil and false when
// the coordinate is outside the grid. The returned slice aliases the grid's
// storage; callers that need an independent copy must make one.
func (g *Grid[T]) Get(x, y int) ([]T, bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil, false
	}

	off := x * g.channels
	return g.rows[y][off : off+g.channels], true
}

// Set writes the channel tuple at column x, row y in place. Out-of-range
// coordinates fail with *IndexOutOfBoundError and leave the grid unmodified;
// a tuple of the wrong length fails with *ChannelCountError.
func (g *Grid[T]) Set(x, y int, value []T) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return &IndexOutOfBoundError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	if len(value) != g.channels {
		return &ChannelCountError{Got: len(value), Want: g.channels}
	}

	copy(g.rows[y][x*g.channels:], value)
	return nil
}

// Flatten emits every sample in row-major order: y from top to bottom, x
// from left to right, channels in pixel order. The output is the wire shape
// consumed by encoders.
func (g *Grid[T]) Flatten() []T {
	n := 0
	for _, row := range g.rows {
		n += len(row)
	}

	flat := make([]T, 0, n)
	for _, row := range g.rows {
		flat = append(flat, row...)
	}
	return flat
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	rows := make([][]T, len(g.rows))
	for y, row := range g.rows {
		rows[y] = make([]T, len(row))
		copy(rows[y], row)
	}

	return &Grid[T]{
		width:    g.width,
		height:   g.height,
		channels: g.channels,
		rows:     rows,
	}
}
