package render

import (
	"fmt"
	"math"

	earcut "github.com/flywave/go-earcut"

	"github.com/OpticalFlyer/skyfall/shapes"
)

// Triangulate splits a simple polygon into triangles. holes lists the
// indices into points at which each hole ring starts; points before the
// first hole form the outer ring.
func Triangulate(points []shapes.Point, holes []int) ([]uint16, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("triangulate: need at least 3 points, got %d", len(points))
	}
	if len(points) > math.MaxUint16 {
		return nil, fmt.Errorf("triangulate: %d points exceed the 16-bit index range", len(points))
	}

	flat := make([]float64, 0, len(points)*2)
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}

	tris, err := earcut.Earcut(flat, holes, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulate: %w", err)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("triangulate: degenerate polygon with %d points", len(points))
	}

	indices := make([]uint16, len(tris))
	for i, t := range tris {
		indices[i] = uint16(t)
	}
	return indices, nil
}
