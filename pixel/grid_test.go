package pixel

import (
	"errors"
	"testing"
)

// gradientGrid builds a grid whose sample at (x, y, c) is x + y*16 + c,
// truncated to the sample type. Deterministic and position-dependent, so
// misplaced pixels show up in comparisons.
func gradientGrid(width, height, channels int) *Grid[uint8] {
	g := NewGrid[uint8](width, height, channels)
	px := make([]uint8, channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < channels; c++ {
				px[c] = uint8(x + y*16 + c)
			}
			if err := g.Set(x, y, px); err != nil {
				panic(err)
			}
		}
	}
	return g
}

func TestGrid_GetSet(t *testing.T) {
	g := NewGrid[uint8](4, 3, 3)

	if err := g.Set(2, 1, []uint8{10, 20, 30}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	px, ok := g.Get(2, 1)
	if !ok {
		t.Fatal("Get(2,1) reported out of bounds")
	}
	if px[0] != 10 || px[1] != 20 || px[2] != 30 {
		t.Errorf("pixel: got %v, want [10 20 30]", px)
	}

	// Neighbors stay zeroed
	px, _ = g.Get(1, 1)
	if px[0] != 0 || px[1] != 0 || px[2] != 0 {
		t.Errorf("neighbor pixel: got %v, want [0 0 0]", px)
	}
}

func TestGrid_Get_OutOfBounds(t *testing.T) {
	g := NewGrid[uint8](4, 3, 1)

	tests := []struct {
		name string
		x, y int
	}{
		{"x at width", 4, 0},
		{"x beyond width", 5, 1},
		{"y at height", 0, 3},
		{"y beyond height", 1, 7},
		{"x negative", -1, 0},
		{"y negative", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if px, ok := g.Get(tt.x, tt.y); ok || px != nil {
				t.Errorf("Get(%d,%d): got %v, %v; want nil, false", tt.x, tt.y, px, ok)
			}
		})
	}
}

func TestGrid_Set_OutOfBounds(t *testing.T) {
	g := gradientGrid(4, 3, 1)
	before := g.Flatten()

	err := g.Set(4, 0, []uint8{99})
	if err == nil {
		t.Fatal("Set out of bounds should fail")
	}

	var oob *IndexOutOfBoundError
	if !errors.As(err, &oob) {
		t.Fatalf("error type: got %T, want *IndexOutOfBoundError", err)
	}
	if oob.X != 4 || oob.Y != 0 || oob.Width != 4 || oob.Height != 3 {
		t.Errorf("error fields: got %+v, want {X:4 Y:0 Width:4 Height:3}", oob)
	}

	// Failed writes leave the grid unmodified
	after := g.Flatten()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("grid modified at flat index %d: %d -> %d", i, before[i], after[i])
		}
	}
}

func TestGrid_Set_ChannelMismatch(t *testing.T) {
	g := NewGrid[uint8](4, 3, 3)

	err := g.Set(0, 0, []uint8{1, 2})
	var cc *ChannelCountError
	if !errors.As(err, &cc) {
		t.Fatalf("error type: got %T, want *ChannelCountError", err)
	}
	if cc.Got != 2 || cc.Want != 3 {
		t.Errorf("error fields: got %+v, want {Got:2 Want:3}", cc)
	}
}

func TestGrid_Flatten_Order(t *testing.T) {
	g := NewGrid[uint8](2, 2, 2)
	_ = g.Set(0, 0, []uint8{1, 2})
	_ = g.Set(1, 0, []uint8{3, 4})
	_ = g.Set(0, 1, []uint8{5, 6})
	_ = g.Set(1, 1, []uint8{7, 8})

	flat := g.Flatten()
	want := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	if len(flat) != len(want) {
		t.Fatalf("length: got %d, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("flat[%d]: got %d, want %d", i, flat[i], want[i])
		}
	}
}

func TestGrid_Accessors(t *testing.T) {
	g := NewGrid[float32](7, 5, 3)

	if g.Width() != 7 || g.Height() != 5 || g.Channels() != 3 {
		t.Errorf("dimensions: got %dx%d/%d, want 7x5/3", g.Width(), g.Height(), g.Channels())
	}
	if len(g.Rows()) != 5 || len(g.Rows()[0]) != 7*3 {
		t.Errorf("rows: got %dx%d, want 5x21", len(g.Rows()), len(g.Rows()[0]))
	}
}

func TestGrid_Setters_Independent(t *testing.T) {
	g := NewGrid[uint8](4, 3, 1)

	// Dimension setters do not touch the backing rows; the declared size and
	// the storage can disagree until the caller fixes the other side.
	g.SetWidth(8)
	g.SetHeight(6)
	if g.Width() != 8 || g.Height() != 6 {
		t.Errorf("declared size: got %dx%d, want 8x6", g.Width(), g.Height())
	}
	if len(g.Rows()) != 3 || len(g.Rows()[0]) != 4 {
		t.Errorf("backing rows changed: got %dx%d, want 3x4", len(g.Rows()), len(g.Rows()[0]))
	}

	rows := make([][]uint8, 6)
	for y := range rows {
		rows[y] = make([]uint8, 8)
	}
	g.SetRows(rows)
	if len(g.Rows()) != 6 {
		t.Errorf("rows after SetRows: got %d, want 6", len(g.Rows()))
	}
}

func TestGridFromRows_NoValidation(t *testing.T) {
	// Deliberately inconsistent: declared 4x4 over a single short row.
	g := GridFromRows[uint16](4, 4, 1, [][]uint16{{1, 2}})

	if g.Width() != 4 || g.Height() != 4 {
		t.Errorf("declared size: got %dx%d, want 4x4", g.Width(), g.Height())
	}
	if len(g.Rows()) != 1 {
		t.Errorf("rows: got %d, want 1", len(g.Rows()))
	}
}

func TestGrid_Clone_Independent(t *testing.T) {
	g := gradientGrid(4, 3, 2)
	clone := g.Clone()

	if err := g.Set(0, 0, []uint8{200, 201}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	px, _ := clone.Get(0, 0)
	if px[0] == 200 {
		t.Error("clone shares storage with source")
	}
}
