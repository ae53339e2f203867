package render

import (
	"image/color"
	"math"

	"github.com/OpticalFlyer/skyfall/shapes"
)

const defaultCirclePoints = 30

var _ Drawable = (*CircleShape)(nil)

// CircleShape is a filled circle approximated by a regular polygon.
type CircleShape struct {
	center shapes.Point
	radius float64
	count  int
	fill   color.Color

	points  []shapes.Point
	indices []uint16
	dirty   bool
}

// NewCircleShape returns a white circle of the given radius at the origin.
func NewCircleShape(radius float64) *CircleShape {
	return &CircleShape{
		radius: radius,
		count:  defaultCirclePoints,
		fill:   White,
		dirty:  true,
	}
}

func (c *CircleShape) WithPosition(p shapes.Point) *CircleShape {
	c.SetPosition(p)
	return c
}

func (c *CircleShape) WithFill(clr color.Color) *CircleShape {
	c.fill = clr
	return c
}

// WithPointCount sets how many vertices approximate the circle. Values
// below 3 are raised to 3.
func (c *CircleShape) WithPointCount(n int) *CircleShape {
	if n < 3 {
		n = 3
	}
	c.count = n
	c.dirty = true
	return c
}

func (c *CircleShape) SetPosition(p shapes.Point) {
	c.center = p
	c.dirty = true
}

func (c *CircleShape) Position() shapes.Point { return c.center }

func (c *CircleShape) SetRadius(r float64) {
	c.radius = r
	c.dirty = true
}

func (c *CircleShape) Radius() float64 { return c.radius }

// Contains reports whether p lies inside or on the circle.
func (c *CircleShape) Contains(p shapes.Point) bool {
	dx := p.X - c.center.X
	dy := p.Y - c.center.Y
	return dx*dx+dy*dy <= c.radius*c.radius
}

// Points returns the polygon approximating the circle.
func (c *CircleShape) Points() []shapes.Point {
	c.rebuild()
	return c.points
}

func (c *CircleShape) rebuild() {
	if !c.dirty {
		return
	}
	c.points = c.points[:0]
	for i := 0; i < c.count; i++ {
		a := 2 * math.Pi * float64(i) / float64(c.count)
		c.points = append(c.points, shapes.Pt(
			c.center.X+c.radius*math.Cos(a),
			c.center.Y+c.radius*math.Sin(a),
		))
	}
	indices, err := Triangulate(c.points, nil)
	if err != nil {
		// Zero radius collapses the ring; draw nothing.
		indices = nil
	}
	c.indices = indices
	c.dirty = false
}

func (c *CircleShape) Draw(ctx Context) {
	c.rebuild()
	if len(c.indices) == 0 {
		return
	}
	ctx.FillPolygon(c.points, c.indices, c.fill)
}
