// Package geometry provides the integer value types the frame code computes
// with: points, sizes, edge insets, and rectangles. All coordinates are
// view-relative with the origin at the top-left corner; units are whatever
// the caller works in (pixels or terminal cells).
package geometry

// Point is a position relative to the view origin.
type Point struct {
	X int // Horizontal offset from the left edge
	Y int // Vertical offset from the top edge
}

// Size is a non-negative width/height pair.
type Size struct {
	Width  int // Horizontal extent
	Height int // Vertical extent
}

// Insets describes spacing applied inward from each edge of a rectangle.
type Insets struct {
	Top    int // Inset from the top edge
	Left   int // Inset from the left edge
	Bottom int // Inset from the bottom edge
	Right  int // Inset from the right edge
}

// UniformInsets returns insets with the same thickness on all four sides.
func UniformInsets(n int) Insets {
	return Insets{Top: n, Left: n, Bottom: n, Right: n}
}

// TLBR returns insets from explicit top, left, bottom, right values.
func TLBR(top, left, bottom, right int) Insets {
	return Insets{Top: top, Left: left, Bottom: bottom, Right: right}
}

// Width returns the combined horizontal inset (left + right).
func (i Insets) Width() int {
	return i.Left + i.Right
}

// Height returns the combined vertical inset (top + bottom).
func (i Insets) Height() int {
	return i.Top + i.Bottom
}

// IsZero reports whether all four insets are zero.
func (i Insets) IsZero() bool {
	return i == Insets{}
}

// Rect is an axis-aligned rectangle positioned relative to the view origin.
type Rect struct {
	X      int // Left edge
	Y      int // Top edge
	Width  int // Horizontal extent
	Height int // Vertical extent
}

// Right returns the exclusive right edge (X + Width).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge (Y + Height).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Size returns the rectangle's width and height.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p falls inside the rectangle. The right and
// bottom edges are exclusive, matching half-open pixel rectangles.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Inset shrinks the rectangle by the given insets. Width and height are
// clamped at zero so degenerate insets never produce negative extents.
func (r Rect) Inset(i Insets) Rect {
	return Rect{
		X:      r.X + i.Left,
		Y:      r.Y + i.Top,
		Width:  max(0, r.Width-i.Width()),
		Height: max(0, r.Height-i.Height()),
	}
}

// Mirror flips the rectangle horizontally within a view of the given width,
// for right-to-left layouts. The vertical extent is unchanged.
func (r Rect) Mirror(viewWidth int) Rect {
	return Rect{
		X:      viewWidth - r.X - r.Width,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
	}
}

// MirrorPoint flips a point horizontally within a view of the given width.
func MirrorPoint(p Point, viewWidth int) Point {
	return Point{X: viewWidth - 1 - p.X, Y: p.Y}
}
