// Package pixel provides the dense pixel-grid container shared by every
// image format in vision-x, together with the geometry transforms that are
// independent of colorspace (nearest-neighbor resize and rectangular crop).
//
// # Layout
//
// A Grid stores height rows in row-major order. Each row holds
// width*channels samples laid out pixel by pixel, so the tuple for
// coordinate (x, y) occupies rows[y][x*channels : (x+1)*channels].
// Sample types are 8-bit unsigned, 16-bit unsigned, or 32-bit float.
//
// # Coordinate System
//
// All coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. Accessors take (x, y),
// i.e. (column, row).
//
// # Consistency
//
// Constructors allocate rows matching the declared dimensions, but the
// SetWidth, SetHeight, and SetRows setters are independent of each other.
// A caller that changes dimensions without replacing the backing rows (or
// vice versa) owns the resulting inconsistency; the grid does not
// re-validate on every access.
package pixel
