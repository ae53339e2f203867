// Package level holds the static background geometry of the scene: either
// the built-in ground rectangle or polygons read from an ESRI shapefile.
package level

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/skyfall/proj"
	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/shapes"
)

var _ render.Drawable = (*Level)(nil)

// ErrNoPolygons is returned by Load when a shapefile has no usable rings.
var ErrNoPolygons = errors.New("no polygon records")

// Level is an ordered set of drawables making up the background.
type Level struct {
	parts  []render.Drawable
	bounds shapes.Rect
}

// Default returns a level made of a single ground rectangle with its
// top-left corner at the world origin.
func Default(size shapes.Size, fill color.Color) *Level {
	ground := render.NewRectangleShape().
		WithSize(size).
		WithFill(fill)
	return &Level{
		parts:  []render.Drawable{ground},
		bounds: ground.Bounds(),
	}
}

// Load reads every polygon record of the shapefile at path and maps it to
// world pixels with p; a nil p is proj.Planar at scale 1. Each outer ring
// becomes a filled polygon; the rings following it with opposite winding are
// cut out of it as holes. Records of other shape types are skipped.
func Load(path string, fill color.Color, p proj.Projection) (*Level, error) {
	if p == nil {
		p = proj.Planar{}
	}

	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level %s: %w", path, err)
	}
	defer r.Close()

	if r.GeometryType != shp.POLYGON {
		return nil, fmt.Errorf("level %s: unsupported geometry type %d", path, r.GeometryType)
	}

	lvl := &Level{}
	first := true
	for r.Next() {
		n, s := r.Shape()
		poly, ok := s.(*shp.Polygon)
		if !ok {
			continue
		}
		for _, g := range groupRings(splitRings(poly)) {
			shape, err := render.NewPolygonShape(g.project(p), g.holes, fill)
			if err != nil {
				return nil, fmt.Errorf("level %s: record %d: %w", path, n, err)
			}
			lvl.parts = append(lvl.parts, shape)
			if first {
				lvl.bounds = shape.Bounds()
				first = false
			} else {
				lvl.bounds = union(lvl.bounds, shape.Bounds())
			}
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	if len(lvl.parts) == 0 {
		return nil, fmt.Errorf("level %s: %w", path, ErrNoPolygons)
	}
	return lvl, nil
}

// Len returns the number of drawables in the level.
func (l *Level) Len() int { return len(l.parts) }

// Bounds returns the box enclosing every part.
func (l *Level) Bounds() shapes.Rect { return l.bounds }

func (l *Level) Draw(ctx render.Context) {
	for _, p := range l.parts {
		p.Draw(ctx)
	}
}

func union(a, b shapes.Rect) shapes.Rect {
	x0, y0 := min(a.Pos.X, b.Pos.X), min(a.Pos.Y, b.Pos.Y)
	x1, y1 := max(a.Right(), b.Right()), max(a.Bottom(), b.Bottom())
	return shapes.R(x0, y0, x1-x0, y1-y0)
}
