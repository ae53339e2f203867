package level

import (
	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/skyfall/proj"
	"github.com/OpticalFlyer/skyfall/shapes"
)

type ring []shapes.Point

// splitRings cuts the flat point list of a polygon record at its part
// offsets and drops each ring's closing point. Points stay in shapefile
// coordinates so winding can be classified before projecting.
func splitRings(poly *shp.Polygon) []ring {
	rings := make([]ring, 0, len(poly.Parts))
	for i, start := range poly.Parts {
		end := int32(len(poly.Points))
		if i+1 < len(poly.Parts) {
			end = poly.Parts[i+1]
		}
		if start < 0 || start >= end || end > int32(len(poly.Points)) {
			continue
		}
		pts := make(ring, 0, end-start)
		for _, p := range poly.Points[start:end] {
			pts = append(pts, shapes.Pt(p.X, p.Y))
		}
		if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		if len(pts) >= 3 {
			rings = append(rings, pts)
		}
	}
	return rings
}

// signedArea is positive for counter-clockwise rings in a y-up system.
func (r ring) signedArea() float64 {
	var a float64
	for i := range r {
		j := (i + 1) % len(r)
		a += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return a / 2
}

type group struct {
	points []shapes.Point
	holes  []int
}

func (g group) project(p proj.Projection) []shapes.Point {
	out := make([]shapes.Point, len(g.points))
	for i, pt := range g.points {
		out[i] = p.Project(pt.X, pt.Y)
	}
	return out
}

// groupRings attaches holes to the outer ring before them. Shapefile outer
// rings are clockwise, holes counter-clockwise; a hole with no outer ring
// before it is treated as an outer ring.
func groupRings(rings []ring) []group {
	var groups []group
	for _, r := range rings {
		outer := r.signedArea() < 0
		if outer || len(groups) == 0 {
			groups = append(groups, group{points: append([]shapes.Point(nil), r...)})
			continue
		}
		g := &groups[len(groups)-1]
		g.holes = append(g.holes, len(g.points))
		g.points = append(g.points, r...)
	}
	return groups
}
