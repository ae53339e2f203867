package render

import (
	"image/color"
	"math"

	"github.com/OpticalFlyer/skyfall/shapes"
)

var _ Drawable = (*PolygonShape)(nil)

// PolygonShape is a filled simple polygon, optionally with holes.
type PolygonShape struct {
	points  []shapes.Point
	holes   []int
	indices []uint16
	fill    color.Color
}

// NewPolygonShape triangulates points once up front. holes has the same
// meaning as in Triangulate.
func NewPolygonShape(points []shapes.Point, holes []int, fill color.Color) (*PolygonShape, error) {
	indices, err := Triangulate(points, holes)
	if err != nil {
		return nil, err
	}
	return &PolygonShape{
		points:  points,
		holes:   holes,
		indices: indices,
		fill:    fill,
	}, nil
}

func (p *PolygonShape) Points() []shapes.Point { return p.points }
func (p *PolygonShape) Indices() []uint16      { return p.indices }
func (p *PolygonShape) SetFill(c color.Color)  { p.fill = c }

// Bounds returns the axis-aligned box around the outer ring.
func (p *PolygonShape) Bounds() shapes.Rect {
	outer := p.points
	if len(p.holes) > 0 {
		outer = p.points[:p.holes[0]]
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range outer {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return shapes.R(minX, minY, maxX-minX, maxY-minY)
}

func (p *PolygonShape) Draw(ctx Context) {
	ctx.FillPolygon(p.points, p.indices, p.fill)
}
