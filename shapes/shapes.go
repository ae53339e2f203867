// Package shapes holds the plain geometry value types shared by the
// renderer, the widgets and the game objects.
package shapes

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// SubScalar subtracts v from both components.
func (p Point) SubScalar(v float64) Point {
	return Point{X: p.X - v, Y: p.Y - v}
}

// Size is a width and height in pixels. Negative sizes are not rejected but
// nothing in the engine produces them.
type Size struct {
	W, H float64
}

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h float64) Size {
	return Size{W: w, H: h}
}

// Scale returns the size multiplied by f.
func (s Size) Scale(f float64) Size {
	return Size{W: s.W * f, H: s.H * f}
}

// Anchor returns the offset of the fractional origin o inside a box of
// this size, i.e. (W*o.X, H*o.Y).
func (s Size) Anchor(o Point) Point {
	return Point{X: s.W * o.X, Y: s.H * o.Y}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Pos  Point
	Size Size
}

// R is shorthand for a Rect at (x, y) with size w x h.
func R(x, y, w, h float64) Rect {
	return Rect{Pos: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Pos.X + r.Size.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Pos.Y + r.Size.H
}

// Center returns the geometric centre of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Pos.X + r.Size.W/2, Y: r.Pos.Y + r.Size.H/2}
}

// Contains reports whether (x, y) lies inside the rectangle. The left and
// top edges are inclusive, the right and bottom edges exclusive, so a
// zero-sized rectangle contains nothing.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Pos.X && x < r.Right() &&
		y >= r.Pos.Y && y < r.Bottom()
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Pos,
		{X: r.Right(), Y: r.Pos.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Pos.X, Y: r.Bottom()},
	}
}
