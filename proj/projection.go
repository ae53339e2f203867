// Package proj maps level geometry from shapefile coordinates into world
// pixels. Shapefiles are y-up; the world is y-down with the ground surface
// at y = 0.
package proj

import (
	"fmt"

	"github.com/OpticalFlyer/skyfall/shapes"
)

// Projection converts one shapefile coordinate pair to world pixels.
type Projection interface {
	Project(x, y float64) shapes.Point
}

// Planar treats shapefile units as pixels, scaled by Scale, with the y axis
// flipped.
type Planar struct {
	Scale float64
}

func (p Planar) Project(x, y float64) shapes.Point {
	s := p.Scale
	if s == 0 {
		s = 1
	}
	return shapes.Pt(x*s, -y*s)
}

// Geographic projects WGS84 longitude/latitude (EPSG:4326) through Web
// Mercator tiles of TileSize pixels at Zoom. Origin, in lon/lat, lands at
// the world origin.
type Geographic struct {
	Zoom     int
	TileSize float64
	origin   shapes.Point
}

// NewGeographic returns a Geographic projection anchored at (lon, lat).
func NewGeographic(zoom int, tileSize, lon, lat float64) Geographic {
	g := Geographic{Zoom: zoom, TileSize: tileSize}
	x, y := LatLonToTileCoords(lat, lon, zoom)
	g.origin = shapes.Pt(x*tileSize, y*tileSize)
	return g
}

func (g Geographic) Project(lon, lat float64) shapes.Point {
	x, y := LatLonToTileCoords(lat, lon, g.Zoom)
	return shapes.Pt(x*g.TileSize, y*g.TileSize).Sub(g.origin)
}

// WebMercator projects EPSG:3857 meters the same way as Geographic. Origin
// is given in meters.
type WebMercator struct {
	Zoom     int
	TileSize float64
	origin   shapes.Point
}

// NewWebMercator returns a WebMercator projection anchored at (x, y) meters.
func NewWebMercator(zoom int, tileSize, x, y float64) WebMercator {
	m := WebMercator{Zoom: zoom, TileSize: tileSize}
	tx, ty := WebMercatorToTileCoords(x, y, zoom)
	m.origin = shapes.Pt(tx*tileSize, ty*tileSize)
	return m
}

func (m WebMercator) Project(x, y float64) shapes.Point {
	tx, ty := WebMercatorToTileCoords(x, y, m.Zoom)
	return shapes.Pt(tx*m.TileSize, ty*m.TileSize).Sub(m.origin)
}

// Options selects and parameterises a projection by name.
type Options struct {
	Name     string
	Scale    float64
	Zoom     int
	TileSize float64
	Origin   [2]float64
}

// New builds the projection named by opts.Name: "planar" (or empty),
// "geographic" or "webmercator".
func New(opts Options) (Projection, error) {
	tileSize := opts.TileSize
	if tileSize <= 0 {
		tileSize = 256
	}
	switch opts.Name {
	case "", "planar":
		return Planar{Scale: opts.Scale}, nil
	case "geographic":
		return NewGeographic(opts.Zoom, tileSize, opts.Origin[0], opts.Origin[1]), nil
	case "webmercator":
		return NewWebMercator(opts.Zoom, tileSize, opts.Origin[0], opts.Origin[1]), nil
	}
	return nil, fmt.Errorf("unknown projection %q", opts.Name)
}
